// Package clientip resolves the address of the client behind a request.
package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// proxyHeaders are consulted in order when proxies are trusted.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolver extracts client addresses. Proxy headers are ignored unless
// TrustProxy is set, since any client can forge them.
type Resolver struct {
	TrustProxy bool
}

// FromRequest returns the normalized client IP, or "" if none is valid.
// X-Forwarded-For contributes its left-most valid entry.
func (res Resolver) FromRequest(r *http.Request) string {
	if res.TrustProxy {
		for _, h := range proxyHeaders {
			for part := range strings.SplitSeq(r.Header.Get(h), ",") {
				if ip := normalize(part); ip != "" {
					return ip
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// normalize parses s and returns its canonical form. IPv4-mapped IPv6
// addresses are unmapped so both spellings share one rate limit bucket.
func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
