package middleware

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/binsight/hub/internal/errors"
	"github.com/binsight/hub/internal/ratelimit"
	nuts "github.com/vaudience/go-nuts"
)

// RateLimitMiddleware throttles clients by their address
type RateLimitMiddleware struct {
	limiter  ratelimit.Limiter
	onReject func(client string)
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, onReject func(client string)) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:  limiter,
		onReject: onReject,
	}
}

// Limit rejects requests over budget with 429. Limiter failures let the
// request through.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r)

		res, err := m.limiter.Allow(r.Context(), client)
		if err != nil {
			nuts.L.Warnf("[RateLimit] Limiter unavailable, allowing %s: %v", client, err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			retry := int(math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			if m.onReject != nil {
				m.onReject(client)
			}
			handleError(w, errors.NewRateLimitError("too many requests", nil).
				WithRequestID(nuts.NID("req", 12)).
				WithDetails(map[string]int{"retry_after_seconds": retry}))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Helper functions

func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func handleError(w http.ResponseWriter, err error) {
	apiErr, ok := errors.As(err)
	if !ok {
		apiErr = errors.NewInternalError("internal server error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Code)
	json.NewEncoder(w).Encode(apiErr)
	nuts.L.Warnf("[Middleware] %s", apiErr.Error())
}
