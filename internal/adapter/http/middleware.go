package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

type ctxKey int

const (
	callerKey ctxKey = iota
	requestIDKey
)

// CallerFrom returns the authenticated caller for the request, or the
// anonymous caller when no valid session was presented.
func CallerFrom(ctx context.Context) domain.Caller {
	if caller, ok := ctx.Value(callerKey).(domain.Caller); ok {
		return caller
	}
	return domain.Anonymous
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger assigns a request ID and logs request start and
// completion.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := fmt.Sprintf("req-%d", start.UnixNano())
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

			log.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			next.ServeHTTP(w, r)

			log.Debug("http_response", "Request completed", requestID, map[string]any{
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic_recovered", "Panic recovered", requestIDFrom(r.Context()), nil, fmt.Errorf("%v", rec))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate resolves a bearer token to a caller. Requests without a
// token, or with one that does not resolve, proceed as anonymous:
// anonymous dine-in ordering depends on that.
func Authenticate(sessions interfaces.SessionRepository, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := domain.Anonymous
			if token := bearerToken(r); token != "" {
				user, err := sessions.FindUser(r.Context(), token)
				if err == nil && user.IsActive {
					caller = domain.Caller{Authenticated: true, UserID: user.ID, Role: user.Role}
				} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
					log.Error("auth_lookup_failed", "Failed to resolve session token", requestIDFrom(r.Context()), nil, err)
				}
			}
			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
