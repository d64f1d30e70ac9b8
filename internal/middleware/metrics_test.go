package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/jobboard/internal/domain"
	"github.com/DukeRupert/jobboard/internal/handler"
)

func TestOperatorAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		wantStatus int
	}{
		{"valid credentials", "prom", "s3cret", true, http.StatusOK},
		{"no credentials", "", "", false, http.StatusUnauthorized},
		{"wrong username", "other", "s3cret", true, http.StatusUnauthorized},
		{"wrong password", "prom", "nope", true, http.StatusUnauthorized},
		{"password prefix", "prom", "s3c", true, http.StatusUnauthorized},
		{"empty credentials", "", "", true, http.StatusUnauthorized},
	}

	mw := NewOperatorAuth("metrics", "prom", "s3cret", newTestLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rec := httptest.NewRecorder()
			mw.Handler(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="metrics", charset="UTF-8"`, rec.Header().Get("WWW-Authenticate"))

				var body handler.JSONError
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, domain.EUNAUTHORIZED, body.Error.Code)
			}
		})
	}
}

func TestOperatorAuth_MalformedHeader(t *testing.T) {
	mw := NewOperatorAuth("metrics", "prom", "s3cret", newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Basic !!!not-base64")
	rec := httptest.NewRecorder()
	mw.Handler(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOperatorAuth_DisabledWithoutCredentials(t *testing.T) {
	mw := NewOperatorAuth("metrics", "", "", newTestLogger())

	rec := httptest.NewRecorder()
	mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
