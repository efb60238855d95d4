package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brkit/pkg/clientip"
)

func request(remote string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remote
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		trust   bool
		remote  string
		headers map[string]string
		want    string
	}{
		{"remote addr with port", false, "203.0.113.7:5555", nil, "203.0.113.7"},
		{"remote addr without port", false, "203.0.113.7", nil, "203.0.113.7"},
		{"ipv6 remote", false, "[2001:db8::1]:443", nil, "2001:db8::1"},
		{"ipv4-mapped ipv6", false, "[::ffff:198.51.100.2]:80", nil, "198.51.100.2"},
		{"headers ignored without trust", false, "10.0.0.1:80", map[string]string{"X-Forwarded-For": "8.8.8.8"}, "10.0.0.1"},
		{"forwarded for first valid", true, "10.0.0.1:80", map[string]string{"X-Forwarded-For": "garbage, 8.8.8.8, 10.0.0.2"}, "8.8.8.8"},
		{"cloudflare first", true, "10.0.0.1:80", map[string]string{"CF-Connecting-IP": "1.1.1.1", "X-Forwarded-For": "8.8.8.8"}, "1.1.1.1"},
		{"real ip", true, "10.0.0.1:80", map[string]string{"X-Real-IP": " 9.9.9.9 "}, "9.9.9.9"},
		{"invalid headers fall back", true, "10.0.0.1:80", map[string]string{"X-Real-IP": "nope"}, "10.0.0.1"},
		{"invalid remote", false, "not-an-ip", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := clientip.Resolver{TrustProxy: tt.trust}
			assert.Equal(t, tt.want, res.FromRequest(request(tt.remote, tt.headers)))
		})
	}
}
