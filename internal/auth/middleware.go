package auth

import (
	"context"
	"net/http"
	"strings"
)

// APIKeyHeader carries the process-wide programmatic access key.
const APIKeyHeader = "X-API-KEY"

// APIKeyPrincipal is the synthetic subject bound to requests admitted by key.
const APIKeyPrincipal = "apiKeyUser"

// Principal is the authenticated identity bound to a request by an admission
// filter.
type Principal struct {
	Email  string
	Role   Role
	APIKey bool
}

type contextKey string

const principalContextKey contextKey = "creditcore_principal"

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}

// APIKeyMiddleware admits requests carrying the configured key as a synthetic
// principal with no authorities. It never rejects on its own: a missing or
// wrong key just leaves the request unauthenticated for later filters.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey != "" && r.Header.Get(APIKeyHeader) == apiKey {
				ctx := WithPrincipal(r.Context(), &Principal{Email: APIKeyPrincipal, APIKey: true})
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// JWTMiddleware binds the bearer token's subject to the request. It observes
// an earlier filter's principal and passes it through untouched; like the API
// key filter, it never rejects — protected routes do that via RequireAuth.
func JWTMiddleware(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := svc.ParseToken(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := WithPrincipal(r.Context(), &Principal{Email: claims.Email, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that no admission filter authenticated.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
