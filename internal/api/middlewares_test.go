package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/internal/api"
	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

func TestMiddleware_WithIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote address without headers",
			remoteAddr: "192.0.2.1:1234",
			want:       "192.0.2.1",
		},
		{
			name:       "headers from an untrusted peer are ignored",
			remoteAddr: "192.0.2.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.7"},
			want:       "192.0.2.1",
		},
		{
			name:       "forwarded address from a trusted network",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:443",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.1.2.3"},
			want:       "203.0.113.7",
		},
		{
			name:       "real ip from a trusted address",
			trusted:    []string{"bogus", "192.0.2.1"},
			remoteAddr: "192.0.2.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.7"},
			want:       "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mw := api.NewMiddleware(nil, nil, nil, nil, tt.trusted)

			var got string

			h := mw.WithIP(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = entity.IPFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			h.ServeHTTP(httptest.NewRecorder(), req)
			require.Equal(t, tt.want, got)
		})
	}
}
