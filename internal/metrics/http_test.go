package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/jobs", "/api/jobs"},
		{"/api/jobs/3f2504e0-4f89-11d3-9a0c-0305e82c3301/push-top", "/api/jobs/{id}/push-top"},
		{"/api/admin/users/Xk29abcDEF/ban", "/api/admin/users/{uid}/ban"},
		{"/api/admin/users/Xk29abcDEF", "/api/admin/users/{uid}"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.in))
		})
	}
}

func TestMiddleware_CapturesStatus(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unrouted", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/unrouted", "418")))
}

func TestMiddleware_LabelsByMatchedPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/jobs/{id}/push-top", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	h := Middleware(mux)

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/jobs/"+id+"/push-top", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/jobs/{id}/push-top", "200")))
}
