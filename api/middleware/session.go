package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/chocozoo/storefront/internal/session"
	"github.com/chocozoo/storefront/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type contextKey string

const ctxSession contextKey = "session"

type sessionResolver interface {
	Resolve(id string) (*session.Session, bool)
}

// Session attaches the shopper's session, creating one when the header is
// missing or unknown. The effective id is echoed in the response header.
func Session(registry sessionResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, created := registry.Resolve(strings.TrimSpace(r.Header.Get(sessionIDHeader)))
			w.Header().Set(sessionIDHeader, sess.ID)

			ctx := WithSession(r.Context(), sess)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sess.ID)
				if created {
					logg.Info(ctx, "session.created")
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session attached by Session, or nil.
func SessionFromContext(ctx context.Context) *session.Session {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxSession).(*session.Session); ok {
		return v
	}
	return nil
}

// WithSession injects the session into the context for downstream handlers.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSession, sess)
}
