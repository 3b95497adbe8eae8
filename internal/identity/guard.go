package identity

import (
	"net/http"
	"net/url"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/httputil"
	"github.com/bissquit/auctionhub/internal/pkg/metrics"
)

// Decision is what the route guard does with a request.
type Decision int

// Guard decisions.
const (
	// DecisionPlaceholder renders a neutral body while the session loads.
	DecisionPlaceholder Decision = iota
	// DecisionRedirect sends the client to the login entry point.
	DecisionRedirect
	// DecisionForbid rejects an authenticated session lacking the role.
	DecisionForbid
	// DecisionRender lets the protected view run.
	DecisionRender
)

func (d Decision) String() string {
	switch d {
	case DecisionPlaceholder:
		return "placeholder"
	case DecisionRedirect:
		return "redirect"
	case DecisionForbid:
		return "forbid"
	case DecisionRender:
		return "render"
	}
	return "unknown"
}

// Allow is the single role policy for protected routes. An empty required
// role admits any session.
func Allow(required domain.Role, session *domain.Session) bool {
	if session == nil {
		return false
	}
	if required == "" {
		return true
	}
	return session.Role.HasPermission(required)
}

// Decide maps provider state to a guard decision. Nothing is redirected
// before the initial load completes.
func Decide(state State, session *domain.Session, required domain.Role) Decision {
	switch state {
	case StateInitializing:
		return DecisionPlaceholder
	case StateUnauthenticated:
		return DecisionRedirect
	}
	if session == nil {
		return DecisionRedirect
	}
	if !Allow(required, session) {
		return DecisionForbid
	}
	return DecisionRender
}

// GuardConfig configures how guard decisions are answered.
type GuardConfig struct {
	// LoginPath receives redirected page requests. Ignored in API mode.
	LoginPath string
	// API answers with JSON status codes instead of redirects.
	API bool
	// Forbidden renders the page shown on DecisionForbid. Optional.
	Forbidden http.Handler
	// Placeholder renders the page shown on DecisionPlaceholder. Optional.
	Placeholder http.Handler
}

// Guard gates handlers behind the request's session.
type Guard struct {
	cfg GuardConfig
}

// NewGuard creates a route guard.
func NewGuard(cfg GuardConfig) *Guard {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	return &Guard{cfg: cfg}
}

// Authenticated requires any session.
func (g *Guard) Authenticated() func(http.Handler) http.Handler {
	return g.Require("")
}

// Require requires a session whose role grants required.
func (g *Guard) Require(required domain.Role) func(http.Handler) http.Handler {
	label := string(required)
	if label == "" {
		label = "any"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := StateInitializing
			var session *domain.Session
			if p := FromContext(r.Context()); p != nil {
				state = p.State()
				if s, ok := p.Current(); ok {
					session = &s
				}
			}

			decision := Decide(state, session, required)
			metrics.GuardDecisions.WithLabelValues(label, decision.String()).Inc()

			switch decision {
			case DecisionRender:
				next.ServeHTTP(w, r)
			case DecisionPlaceholder:
				g.placeholder(w, r)
			case DecisionRedirect:
				g.redirect(w, r)
			case DecisionForbid:
				g.forbid(w, r)
			}
		})
	}
}

func (g *Guard) placeholder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	if g.cfg.API {
		httputil.Error(w, http.StatusServiceUnavailable, ErrNotReady.Error())
		return
	}
	if g.cfg.Placeholder != nil {
		g.cfg.Placeholder.ServeHTTP(w, r)
		return
	}
	httputil.Text(w, http.StatusServiceUnavailable, "Loading…")
}

func (g *Guard) redirect(w http.ResponseWriter, r *http.Request) {
	if g.cfg.API {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	target := g.cfg.LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
	httputil.SeeOther(w, r, target)
}

func (g *Guard) forbid(w http.ResponseWriter, r *http.Request) {
	if g.cfg.API {
		httputil.Error(w, http.StatusForbidden, "insufficient permissions")
		return
	}
	if g.cfg.Forbidden != nil {
		g.cfg.Forbidden.ServeHTTP(w, r)
		return
	}
	httputil.Text(w, http.StatusForbidden, "Forbidden")
}
