package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"

	"campus-booking-backend/config"
)

// ErrInvalidCredentials covers every way a credential can fail: malformed
// token, bad signature, expired token, or a subject that no longer exists.
// Callers get the same error for all of them.
var ErrInvalidCredentials = errors.New("invalid authentication credentials")

// Authenticator mints and verifies the bearer tokens used by the API.
type Authenticator struct {
	secret   []byte
	expiry   time.Duration
	cacheTTL time.Duration

	// verified maps token string -> subject id for tokens whose signature
	// already checked out, so hot callers skip HMAC verification. Entries
	// never outlive the token's own expiry.
	verified *cache.Cache
}

// New creates an Authenticator from the auth configuration.
func New(cfg *config.AuthConfig) *Authenticator {
	ttl := time.Duration(cfg.TokenCacheTTLSeconds) * time.Second
	return &Authenticator{
		secret:   []byte(cfg.Secret),
		expiry:   time.Duration(cfg.TokenExpireMinutes) * time.Minute,
		cacheTTL: ttl,
		verified: cache.New(ttl, 2*ttl),
	}
}

// GenerateToken mints a signed token whose subject is the given user id.
func (a *Authenticator) GenerateToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(a.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Subject verifies the token and returns the user id it was minted for.
func (a *Authenticator) Subject(tokenStr string) (string, error) {
	if sub, found := a.verified.Get(tokenStr); found {
		return sub.(string), nil
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidCredentials
	}

	ttl := a.cacheTTL
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl > 0 {
		a.verified.Set(tokenStr, claims.Subject, ttl)
	}
	return claims.Subject, nil
}
