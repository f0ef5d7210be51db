package auth

import (
	"time"

	"github.com/and161185/clubhouse/internal/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Purpose string

const (
	PurposeSession Purpose = "session"
	PurposeReset   Purpose = "reset"
)

const (
	SessionTTL = 24 * time.Hour
	ResetTTL   = time.Hour
)

type Claims struct {
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Token is a signed token together with the claims it was issued with.
type Token struct {
	Value     string
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenManager struct {
	secretKey []byte
	now       func() time.Time
}

func NewTokenManager(secretKey string) *TokenManager {
	return &TokenManager{secretKey: []byte(secretKey), now: time.Now}
}

func (tm *TokenManager) GenerateToken(userID string) (Token, error) {
	return tm.issue(userID, PurposeSession, SessionTTL)
}

func (tm *TokenManager) GenerateResetToken(userID string) (Token, error) {
	return tm.issue(userID, PurposeReset, ResetTTL)
}

func (tm *TokenManager) issue(userID string, purpose Purpose, ttl time.Duration) (Token, error) {
	now := tm.now()
	t := Token{
		ID:        uuid.NewString(),
		Subject:   userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	claims := Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        t.ID,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(t.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(t.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secretKey)
	if err != nil {
		return Token{}, err
	}
	t.Value = signed
	return t, nil
}

// ParseToken validates signature, expiry and purpose.
func (tm *TokenManager) ParseToken(tokenStr string, purpose Purpose) (Token, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errs.ErrInvalidToken
		}
		return tm.secretKey, nil
	}, jwt.WithTimeFunc(tm.now))

	if err != nil || !token.Valid {
		return Token{}, errs.ErrInvalidToken
	}
	if claims.Purpose != purpose || claims.Subject == "" || claims.ID == "" {
		return Token{}, errs.ErrInvalidToken
	}

	t := Token{Value: tokenStr, ID: claims.ID, Subject: claims.Subject}
	if claims.IssuedAt != nil {
		t.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		t.ExpiresAt = claims.ExpiresAt.Time
	}
	return t, nil
}
