package security

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session has expired")
)

// SessionClaims records who logged in and when; the registered expiry claim
// enforces the session time box.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed session tokens. A token older
// than the TTL (24h by default) fails validation with ErrSessionExpired;
// logout revokes the token's ID so it cannot be replayed within its window.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // token ID -> original expiry
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

// Issue signs a fresh session token for the given operator.
func (m *SessionManager) Issue(username string) (string, error) {
	now := m.now()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "whites-admin",
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate checks signature, expiry and revocation. Every privileged request
// goes through here; expiry forces the session back to logged-out before the
// request is evaluated.
func (m *SessionManager) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, m.keyFunc,
		jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneRevokedLocked()
	if _, gone := m.revoked[claims.ID]; gone {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// Revoke logs the token out. Revoking an already-expired or garbage token is
// a no-op; logout never fails the caller.
func (m *SessionManager) Revoke(tokenString string) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, m.keyFunc,
		jwt.WithTimeFunc(m.now), jwt.WithoutClaimsValidation())
	if err != nil {
		return
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.ID == "" {
		return
	}

	expiry := m.now().Add(m.ttl)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[claims.ID] = expiry
	m.pruneRevokedLocked()
}

func (m *SessionManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidSession
	}
	return m.secret, nil
}

// pruneRevokedLocked drops revocation entries whose tokens have expired on
// their own. Caller holds the mutex.
func (m *SessionManager) pruneRevokedLocked() {
	now := m.now()
	for id, exp := range m.revoked {
		if exp.Before(now) {
			delete(m.revoked, id)
		}
	}
}
