package store

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront-gateway/kvstore"
	"storefront-gateway/models"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserProfile  = "user_profile"
	keyDeviceID     = "device_id"
)

// Session owns the auth side of the storefront: cached tokens, the user
// profile and the single active order. Tokens and profile are mirrored into
// the key-value store so a restart resumes the session.
type Session struct {
	mu          sync.Mutex
	kv          *kvstore.Store
	access      string
	refresh     string
	user        *models.UserProfile
	activeOrder *models.ActiveOrderSummary
}

// NewSession hydrates cached credentials and profile. kv may be nil (tests).
func NewSession(kv *kvstore.Store) *Session {
	s := &Session{kv: kv}
	if kv == nil {
		return s
	}
	if v, err := kv.Get(keyAccessToken); err == nil {
		s.access = v
	}
	if v, err := kv.Get(keyRefreshToken); err == nil {
		s.refresh = v
	}
	var user models.UserProfile
	if err := kv.GetJSON(keyUserProfile, &user); err == nil {
		s.user = &user
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		_ = kv.Delete(keyUserProfile)
	}
	return s
}

// AccessToken satisfies upstream.TokenSource.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// ApplyAuth persists and applies a credential bundle, whether it came from
// OTP verification or from a guest-to-account upgrade at checkout.
func (s *Session) ApplyAuth(payload models.AuthPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = payload.Access
	s.refresh = payload.Refresh
	user := payload.User
	s.user = &user
	if s.kv != nil {
		_ = s.kv.Put(keyAccessToken, payload.Access)
		_ = s.kv.Put(keyRefreshToken, payload.Refresh)
		_ = s.kv.PutJSON(keyUserProfile, payload.User)
	}
}

// ClearCredentials drops cached tokens and profile. Wired as the upstream
// client's auth-failure callback, and also used on logout.
func (s *Session) ClearCredentials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	if s.kv != nil {
		_ = s.kv.Delete(keyAccessToken)
		_ = s.kv.Delete(keyRefreshToken)
		_ = s.kv.Delete(keyUserProfile)
	}
}

// Logout clears credentials and forgets the active order.
func (s *Session) Logout() {
	s.ClearCredentials()
	s.mu.Lock()
	s.activeOrder = nil
	s.mu.Unlock()
}

func (s *Session) User() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser refreshes the cached profile (session bootstrap).
func (s *Session) SetUser(user models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	if s.kv != nil {
		_ = s.kv.PutJSON(keyUserProfile, user)
	}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access != "" && s.user != nil
}

// ActiveOrder returns the session's in-flight order, if any. While set, the
// address book is read-only.
func (s *Session) ActiveOrder() *models.ActiveOrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeOrder == nil {
		return nil
	}
	o := *s.activeOrder
	return &o
}

func (s *Session) SetActiveOrder(order *models.ActiveOrderSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeOrder = order
}

// DeviceID returns the stable per-install identifier, generating and
// persisting one on first use.
func (s *Session) DeviceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		if v, err := s.kv.Get(keyDeviceID); err == nil && v != "" {
			return v
		}
	}
	id := uuid.NewString()
	if s.kv != nil {
		_ = s.kv.Put(keyDeviceID, id)
	}
	return id
}

// TokenExpiry reads the exp claim of the cached access token without
// verifying the signature (the backend owns verification). Returns the zero
// time when no token is cached or the claim is unreadable.
func (s *Session) TokenExpiry() time.Time {
	token := s.AccessToken()
	if token == "" {
		return time.Time{}
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
