// Package access holds the club's privilege model.
//
// Authorization runs in two explicit stages. The first consults the configured
// admin allow-list by email; a match grants full administrator rights no matter
// what the stored record says. The second checks the stored role against the set
// of roles an operation accepts.
package access

import (
	"strings"
	"time"

	"github.com/and161185/clubhouse/internal/model"
)

var (
	Administrators  = []model.Role{model.RoleAdmin}
	FinanceManagers = []model.Role{model.RoleAdmin, model.RoleFinance}
	ContentManagers = []model.Role{model.RoleAdmin, model.RoleContent}
	Members         = []model.Role{model.RoleAdmin, model.RoleFinance, model.RoleContent, model.RoleMember}
)

// Session is the authenticated caller of a single request flow. It is created
// by a successful login and is invalid once its token id has been revoked.
type Session struct {
	TokenID   string
	Identity  model.Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Policy struct {
	adminEmails map[string]struct{}
}

func NewPolicy(adminEmails []string) *Policy {
	p := &Policy{adminEmails: make(map[string]struct{}, len(adminEmails))}
	for _, e := range adminEmails {
		e = normalizeEmail(e)
		if e != "" {
			p.adminEmails[e] = struct{}{}
		}
	}
	return p
}

// IsAutoAdmin is the allow-list stage.
func (p *Policy) IsAutoAdmin(email string) bool {
	if p == nil {
		return false
	}
	_, ok := p.adminEmails[normalizeEmail(email)]
	return ok
}

// RoleAllowed is the stored-role stage. Unknown roles never match.
func RoleAllowed(role model.Role, allowed []model.Role) bool {
	if !role.Valid() {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// EffectiveRole is the role the identity acts with.
func (p *Policy) EffectiveRole(identity model.Identity) model.Role {
	if p.IsAutoAdmin(identity.Email) {
		return model.RoleAdmin
	}
	return identity.Role
}

func (p *Policy) HasRole(s *Session, allowed ...model.Role) bool {
	if s == nil {
		return false
	}
	if p.IsAutoAdmin(s.Identity.Email) {
		return true
	}
	return RoleAllowed(s.Identity.Role, allowed)
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
