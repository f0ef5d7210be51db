package auth

import (
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Revocations remembers logged-out token ids until they would have expired anyway.
// The list is per process.
type Revocations struct {
	ids *expirable.LRU[string, struct{}]
}

func NewRevocations(size int) *Revocations {
	return &Revocations{ids: expirable.NewLRU[string, struct{}](size, nil, SessionTTL)}
}

func (r *Revocations) Revoke(tokenID string) {
	r.ids.Add(tokenID, struct{}{})
}

func (r *Revocations) IsRevoked(tokenID string) bool {
	return r.ids.Contains(tokenID)
}
