package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/brkit/pkg/i18n"
	"github.com/dmitrymomot/brkit/pkg/logger"
)

// CodeRateLimited is the error code of a 429 response.
const CodeRateLimited = "rate_limited"

// rateLimit spends one token of the client's bucket per request.
func (s *server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := s.clientIP.FromRequest(r)
		if key == "" {
			key = "unknown"
		}

		res := s.limiter.Allow(key)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed() {
			retry := int(math.Ceil(res.RetryAfter(time.Now()).Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
			s.metrics.Throttled()
			s.log.WarnContext(r.Context(), "Rate limit exceeded", logger.Component("ratelimit"))
			writeError(w, http.StatusTooManyRequests, ErrorDetail{
				Code:    CodeRateLimited,
				Message: s.tr.T(i18n.Locale(r.Context()), "error.rate_limited"),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
