package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/DukeRupert/jobboard/internal/handler"
)

// OperatorAuth guards operator endpoints such as /metrics with one shared
// credential pair. Only SHA-256 digests are kept so comparisons run in
// constant time whatever the supplied lengths.
type OperatorAuth struct {
	realm   string
	user    [sha256.Size]byte
	pass    [sha256.Size]byte
	enabled bool
	logger  *slog.Logger
}

// NewOperatorAuth creates the guard. With no username and no password it
// lets every request through, which is what local development wants.
func NewOperatorAuth(realm, username, password string, logger *slog.Logger) *OperatorAuth {
	return &OperatorAuth{
		realm:   realm,
		user:    sha256.Sum256([]byte(username)),
		pass:    sha256.Sum256([]byte(password)),
		enabled: username != "" || password != "",
		logger:  logger,
	}
}

func (m *OperatorAuth) allowed(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	u := sha256.Sum256([]byte(user))
	p := sha256.Sum256([]byte(pass))
	// both comparisons run before the result is used
	userOK := subtle.ConstantTimeCompare(u[:], m.user[:])
	passOK := subtle.ConstantTimeCompare(p[:], m.pass[:])
	return userOK&passOK == 1
}

// Handler returns middleware that requires the operator credentials.
func (m *OperatorAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.enabled && !m.allowed(r) {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.realm+`", charset="UTF-8"`)
			handler.UnauthorizedResponse(w, r, m.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}
