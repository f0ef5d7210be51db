package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/auth"
	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/metrics"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

type Accounts struct {
	store       Storage
	policy      *access.Policy
	tokens      *auth.TokenManager
	revocations *auth.Revocations
	sender      Sender
	publicURL   string
	logger      *zap.SugaredLogger
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewAccounts(store Storage, policy *access.Policy, tokens *auth.TokenManager, revocations *auth.Revocations, sender Sender, publicURL string, logger *zap.SugaredLogger, m *metrics.Metrics) *Accounts {
	return &Accounts{
		store:       store,
		policy:      policy,
		tokens:      tokens,
		revocations: revocations,
		sender:      sender,
		publicURL:   strings.TrimRight(publicURL, "/"),
		logger:      logger,
		metrics:     m,
		now:         time.Now,
	}
}

func hashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", invalid("password must be at least %d characters", MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates a member identity and opens a session for it.
func (a *Accounts) Register(ctx context.Context, req model.RegisterRequest) (*access.Session, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, "", invalid("email %q is malformed", req.Email)
	}
	if utils.IsBlank(req.Username) {
		return nil, "", invalid("username is required")
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	identity, err := a.store.CreateIdentity(ctx, model.Identity{
		Email:       email,
		DisplayName: strings.TrimSpace(req.Username),
		Role:        model.RoleMember,
		CreatedAt:   a.now().UTC(),
	}, hash)
	if err != nil {
		return nil, "", fmt.Errorf("create identity: %w", err)
	}

	return a.open(identity)
}

// Authenticate checks the secret and opens a session. Unknown emails and wrong
// secrets are indistinguishable to the caller.
func (a *Accounts) Authenticate(ctx context.Context, creds model.Credentials) (*access.Session, string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, "", invalid("email and password required")
	}

	identity, hash, err := a.store.GetIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, "", errs.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return nil, "", errs.ErrInvalidCredentials
	}

	return a.open(identity)
}

func (a *Accounts) open(identity model.Identity) (*access.Session, string, error) {
	s, err := a.session(identity)
	if err != nil {
		return nil, "", err
	}

	token, err := a.tokens.GenerateToken(identity.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	s.TokenID = token.ID
	s.IssuedAt = token.IssuedAt
	s.ExpiresAt = token.ExpiresAt
	return s, token.Value, nil
}

// session resolves the effective role. A stored role outside the known set is
// rejected unless the allow-list grants administrator rights.
func (a *Accounts) session(identity model.Identity) (*access.Session, error) {
	role := a.policy.EffectiveRole(identity)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: identity %s has role %q", errs.ErrInvalidRole, identity.ID, identity.Role)
	}
	identity.Role = role
	return &access.Session{Identity: identity}, nil
}

// Resume rebuilds the session behind a bearer token.
func (a *Accounts) Resume(ctx context.Context, tokenStr string) (*access.Session, error) {
	token, err := a.tokens.ParseToken(tokenStr, auth.PurposeSession)
	if err != nil {
		return nil, err
	}
	if a.revocations.IsRevoked(token.ID) {
		return nil, errs.ErrInvalidToken
	}

	identity, err := a.store.GetIdentityByID(ctx, token.Subject)
	if err != nil {
		return nil, err
	}

	s, err := a.session(identity)
	if err != nil {
		return nil, err
	}
	s.TokenID = token.ID
	s.IssuedAt = token.IssuedAt
	s.ExpiresAt = token.ExpiresAt
	return s, nil
}

// Logout ends the session. Its token is refused from then on.
func (a *Accounts) Logout(s *access.Session) error {
	if err := requireSession(s); err != nil {
		return err
	}
	a.revocations.Revoke(s.TokenID)
	return nil
}

// SendPasswordReset mails a reset link when the email belongs to an identity.
// Unknown emails and failed sends succeed silently, so the answer never
// reveals whether an account exists.
func (a *Accounts) SendPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsValidEmail(email) {
		return invalid("email %q is malformed", email)
	}

	identity, _, err := a.store.GetIdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			a.logger.Infof("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("get identity: %w", err)
	}

	token, err := a.tokens.GenerateResetToken(identity.ID)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	link := a.publicURL + "/reset-password?token=" + url.QueryEscape(token.Value)
	if err := a.sender.SendPasswordReset(ctx, identity.Email, link); err != nil {
		a.logger.Errorf("send password reset for user %s: %v", identity.ID, err)
	}
	return nil
}

// ResetPassword consumes a reset token. Each token works once.
func (a *Accounts) ResetPassword(ctx context.Context, req model.PasswordResetConfirm) error {
	token, err := a.tokens.ParseToken(req.Token, auth.PurposeReset)
	if err != nil {
		return err
	}
	if a.revocations.IsRevoked(token.ID) {
		return errs.ErrInvalidToken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	if err := a.store.UpdatePassword(ctx, token.Subject, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	a.revocations.Revoke(token.ID)
	return nil
}

func (a *Accounts) ChangePassword(ctx context.Context, s *access.Session, req model.ChangePasswordRequest) error {
	if err := requireSession(s); err != nil {
		return err
	}

	_, hash, err := a.store.GetIdentityByEmail(ctx, s.Identity.Email)
	if err != nil {
		return fmt.Errorf("get identity: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.OldPassword)); err != nil {
		return errs.ErrInvalidCredentials
	}

	newHash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := a.store.UpdatePassword(ctx, s.Identity.ID, newHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (a *Accounts) Profile(ctx context.Context, s *access.Session) (model.Identity, error) {
	if err := requireSession(s); err != nil {
		return model.Identity{}, err
	}

	identity, err := a.store.GetIdentityByID(ctx, s.Identity.ID)
	if err != nil {
		return model.Identity{}, fmt.Errorf("get identity: %w", err)
	}
	identity.Role = a.policy.EffectiveRole(identity)
	return identity, nil
}

func validateProfile(update model.ProfileUpdate) error {
	if update.DisplayName != nil && utils.IsBlank(*update.DisplayName) {
		return invalid("username must not be blank")
	}
	if update.DisplayName == nil && update.FullName == nil && update.Phone == nil && update.AvatarURL == nil {
		return invalid("nothing to update")
	}
	return nil
}

// UpdateProfile edits the caller's own details.
func (a *Accounts) UpdateProfile(ctx context.Context, s *access.Session, update model.ProfileUpdate) (model.Identity, error) {
	if err := requireSession(s); err != nil {
		return model.Identity{}, err
	}
	if err := validateProfile(update); err != nil {
		return model.Identity{}, err
	}

	if err := a.store.UpdateIdentity(ctx, s.Identity.ID, update); err != nil {
		return model.Identity{}, fmt.Errorf("update identity: %w", err)
	}
	return a.Profile(ctx, s)
}

func (a *Accounts) requireAdmin(s *access.Session) error {
	if !a.policy.HasRole(s, access.Administrators...) {
		return fmt.Errorf("%w: administrator privilege required", errs.ErrForbidden)
	}
	return nil
}

func (a *Accounts) ListUsers(ctx context.Context, s *access.Session) (model.Result[[]model.Identity], error) {
	if err := a.requireAdmin(s); err != nil {
		return model.Result[[]model.Identity]{}, err
	}

	list, err := a.store.ListIdentities(ctx)
	if err != nil {
		return degrade(a.logger, a.metrics, "users", []model.Identity{}, err), nil
	}
	return model.OK(list), nil
}

func (a *Accounts) UpdateRole(ctx context.Context, s *access.Session, userID, role string) error {
	if err := a.requireAdmin(s); err != nil {
		return err
	}

	r, err := model.ParseRole(role)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrValidation, err)
	}
	if err := a.store.UpdateRole(ctx, userID, r); err != nil {
		return fmt.Errorf("update role of %s: %w", userID, err)
	}

	a.logger.Infow("role updated", "user", userID, "role", r, "by", s.Identity.Email)
	return nil
}

func (a *Accounts) UpdateUserDetails(ctx context.Context, s *access.Session, userID string, update model.ProfileUpdate) error {
	if err := a.requireAdmin(s); err != nil {
		return err
	}
	if err := validateProfile(update); err != nil {
		return err
	}

	if err := a.store.UpdateIdentity(ctx, userID, update); err != nil {
		return fmt.Errorf("update identity %s: %w", userID, err)
	}
	return nil
}
