// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey    = "is_authenticated"
	userIDKey    = "user_id"
	usernameKey  = "username"
	userEmailKey = "user_email"
	superuserKey = "superuser"
)

// SessionUser is what we cache in the session and inject into r.Context().
type SessionUser struct {
	ID        string
	Username  string
	Email     string
	Superuser bool
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// SessionManager owns the cookie store and the middleware that loads the
// signed-in user into request context.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the cookie store. An empty sessionKey gets a
// random key so local development works out of the box, at the cost of
// sessions not surviving a restart.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}
	if sessionKey == "" {
		key := securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("failed to generate session key")
		}
		sessionKey = base64.StdEncoding.EncodeToString(key)
		logger.Warn("no session key configured; generated an ephemeral one")
	} else if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	}
	store.Options = opts

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// SignIn writes the user into the session cookie.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[usernameKey] = u.Username
	sess.Values[userEmailKey] = u.Email
	sess.Values[superuserKey] = u.Superuser
	return sess.Save(r, w)
}

// SignOut clears the session cookie.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Options.MaxAge = -1
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if they are logged in.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			su, _ := sess.Values[superuserKey].(bool)
			u := &SessionUser{
				ID:        getString(sess, userIDKey),
				Username:  getString(sess, usernameKey),
				Email:     getString(sess, userEmailKey),
				Superuser: su,
			}
			r = WithUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by
// LoadSessionUser). API callers get a plain 401 JSON body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"authentication required"}`))
	})
}

// CurrentUser returns the session user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithUser returns a request whose context carries u. Exported for tests.
func WithUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser is a test helper alias kept for readability in _test files.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return WithUser(r, u)
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
