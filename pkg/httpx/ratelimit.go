package httpx

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// RateLimits groups the profiles the router assigns to endpoints.
type RateLimits struct {
	// Strict guards credential and invitation-code endpoints.
	Strict RateLimitConfig
	// Moderate guards authenticated writes.
	Moderate RateLimitConfig
	// Lenient guards authenticated reads.
	Lenient RateLimitConfig
	// Public guards unauthenticated reads and health checks.
	Public RateLimitConfig
}

func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5},
		Moderate: RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20},
		Lenient:  RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100},
		Public:   RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000},
	}
}

// RateLimitsFromEnv applies RATELIMIT_{STRICT,MODERATE,LENIENT,PUBLIC}_*
// overrides on top of the defaults.
func RateLimitsFromEnv() RateLimits {
	l := DefaultRateLimits()
	l.Strict = ParseRateLimitFromEnv("STRICT", l.Strict)
	l.Moderate = ParseRateLimitFromEnv("MODERATE", l.Moderate)
	l.Lenient = ParseRateLimitFromEnv("LENIENT", l.Lenient)
	l.Public = ParseRateLimitFromEnv("PUBLIC", l.Public)
	return l
}

// ParseRateLimitFromEnv reads RATELIMIT_<prefix>_REQUESTS, _WINDOW_SEC and
// _BURST. Missing or non-positive values keep the default.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	positive := func(key string) (int, bool) {
		v, err := strconv.Atoi(os.Getenv("RATELIMIT_" + prefix + "_" + key))
		return v, err == nil && v > 0
	}

	cfg := def
	if v, ok := positive("REQUESTS"); ok {
		cfg.RequestsPerWindow = v
	}
	if v, ok := positive("WINDOW_SEC"); ok {
		cfg.Window = time.Duration(v) * time.Second
	}
	if v, ok := positive("BURST"); ok {
		cfg.Burst = v
	}
	return cfg
}

// KeyExtractor picks the bucket a request is counted against. An empty key
// bypasses the limiter.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor uses the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func UserIDKeyExtractor(r *http.Request) string {
	return UserIDFromRequest(r)
}

// CompositeKeyExtractor joins the non-empty keys of each extractor.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, ex := range extractors {
			if k := ex(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one token bucket per key and forgets keys that have been
// idle for limiterIdleTTL.
type limiterSet struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	return &limiterSet{
		entries:   make(map[string]*limiterEntry),
		limit:     rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		lastSweep: time.Now(),
	}
}

func (s *limiterSet) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > limiterIdleTTL {
		for k, e := range s.entries {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(s.entries, k)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// RateLimitMiddleware rejects requests over cfg with 429 and a Retry-After
// header.
func RateLimitMiddleware(cfg RateLimitConfig, key KeyExtractor) Middleware {
	set := newLimiterSet(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			lim := set.get(k, now)
			if lim.AllowN(now, 1) {
				next.ServeHTTP(w, r)
				return
			}

			res := lim.ReserveN(now, 1)
			retryAfter := max(int(res.DelayFrom(now).Seconds()), 1)
			res.CancelAt(now)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				slog.String("key", k),
				slog.Int("retry_after", retryAfter),
			)
			WriteError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
		})
	}
}

func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitByUser buckets by user and IP together. Requests without a user
// fall back to the IP alone.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}
