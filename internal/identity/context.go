package identity

import (
	"context"
	"net/http"

	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
)

type providerKey struct{}

// WithProvider returns a copy of ctx carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the request's provider, or nil when the session
// middleware did not run.
func FromContext(ctx context.Context) *Provider {
	p, _ := ctx.Value(providerKey{}).(*Provider)
	return p
}

// Middleware builds one Provider per request from the request's store,
// loads the persisted session and exposes the provider through the context.
func Middleware(auth Authenticator, stores StoreFactory, cfg ProviderConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := NewProvider(stores(w, r), auth, cfg)
			p.Init(r.Context())

			ctx := WithProvider(r.Context(), p)
			if s, ok := p.Current(); ok {
				ctx = ctxlog.With(ctx, "user_id", s.ID, "role", s.Role)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
