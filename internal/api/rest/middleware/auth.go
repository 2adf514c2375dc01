package middleware

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authRealm = `Basic realm="shortify admin"`

// AdminAuth checks HTTP basic credentials against one configured account.
type AdminAuth struct {
	user string
	hash []byte
	log  *zap.SugaredLogger
}

// NewAdminAuth keeps only a bcrypt hash of pass. An empty user rejects every request.
func NewAdminAuth(user, pass string, log *zap.SugaredLogger) (*AdminAuth, error) {
	if user == "" {
		log.Warn("Admin credentials are not configured, admin endpoints are disabled")
		return &AdminAuth{log: log}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminAuth{user: user, hash: hash, log: log}, nil
}

// Handle provides basic auth handling functionality.
func (a *AdminAuth) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.authorized(r) {
			w.Header().Set("WWW-Authenticate", authRealm)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *AdminAuth) authorized(r *http.Request) bool {
	if a.user == "" {
		return false
	}
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(a.user)) != 1 {
		a.log.Warnw("Admin login failed", "user", user)
		return false
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(pass)); err != nil {
		a.log.Warnw("Admin login failed", "user", user)
		return false
	}
	return true
}
