package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithRole(role domain.Role) *domain.Session {
	return &domain.Session{
		ID:        "user-x",
		Username:  "x",
		Email:     "x@example.com",
		Role:      role,
		CreatedAt: time.Now(),
	}
}

func TestDecide(t *testing.T) {
	customer := sessionWithRole(domain.RoleCustomer)
	seller := sessionWithRole(domain.RoleSeller)
	admin := sessionWithRole(domain.RoleAdmin)

	tests := []struct {
		name     string
		state    State
		session  *domain.Session
		required domain.Role
		want     Decision
	}{
		{"initializing without session", StateInitializing, nil, "", DecisionPlaceholder},
		{"initializing with session", StateInitializing, admin, domain.RoleAdmin, DecisionPlaceholder},
		{"unauthenticated", StateUnauthenticated, nil, "", DecisionRedirect},
		{"unauthenticated admin route", StateUnauthenticated, nil, domain.RoleAdmin, DecisionRedirect},
		{"any session", StateAuthenticated, customer, "", DecisionRender},
		{"customer on customer route", StateAuthenticated, customer, domain.RoleCustomer, DecisionRender},
		{"customer on seller route", StateAuthenticated, customer, domain.RoleSeller, DecisionForbid},
		{"customer on admin route", StateAuthenticated, customer, domain.RoleAdmin, DecisionForbid},
		{"seller on seller route", StateAuthenticated, seller, domain.RoleSeller, DecisionRender},
		{"seller on admin route", StateAuthenticated, seller, domain.RoleAdmin, DecisionForbid},
		{"admin on seller route", StateAuthenticated, admin, domain.RoleSeller, DecisionRender},
		{"admin on admin route", StateAuthenticated, admin, domain.RoleAdmin, DecisionRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.session, tt.required))
		})
	}
}

func TestStateTransitions(t *testing.T) {
	allowed := map[[2]State]bool{
		{StateInitializing, StateUnauthenticated}:  true,
		{StateInitializing, StateAuthenticated}:    true,
		{StateUnauthenticated, StateAuthenticated}: true,
		{StateAuthenticated, StateUnauthenticated}: true,
	}
	states := []State{StateInitializing, StateUnauthenticated, StateAuthenticated}

	for _, from := range states {
		for _, to := range states {
			assert.Equal(t, allowed[[2]State{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func serveGuarded(t *testing.T, g *Guard, required domain.Role, p *Provider, path string) *httptest.ResponseRecorder {
	t.Helper()
	h := g.Require(required)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("protected"))
	}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if p != nil {
		req = req.WithContext(WithProvider(req.Context(), p))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGuard_NotReadyRendersPlaceholder(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), *sessionWithRole(domain.RoleAdmin)))

	// Not initialised: the persisted admin session must not be used yet.
	p := NewProvider(store, newTestAllowList(t), ProviderConfig{})
	g := NewGuard(GuardConfig{LoginPath: "/login"})

	rec := serveGuarded(t, g, "", p, "/profile")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Empty(t, rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "protected")

	rec = serveGuarded(t, g, "", nil, "/profile")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "missing provider counts as not ready")
}

func TestGuard_ReadyWithoutSessionRedirects(t *testing.T) {
	p := newTestProvider(t, NewMemoryStore())
	g := NewGuard(GuardConfig{LoginPath: "/login"})

	rec := serveGuarded(t, g, "", p, "/profile?tab=bids")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fprofile%3Ftab%3Dbids", rec.Header().Get("Location"))
}

func TestGuard_RendersForSession(t *testing.T) {
	p := newTestProvider(t, NewMemoryStore())
	_, err := p.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)

	g := NewGuard(GuardConfig{})
	rec := serveGuarded(t, g, "", p, "/profile")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "protected", rec.Body.String())

	rec = serveGuarded(t, g, domain.RoleAdmin, p, "/users")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGuard_CustomForbiddenPage(t *testing.T) {
	p := newTestProvider(t, NewMemoryStore())
	_, err := p.Login(context.Background(), "seller", "seller123")
	require.NoError(t, err)

	g := NewGuard(GuardConfig{Forbidden: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("admins only"))
	})})

	rec := serveGuarded(t, g, domain.RoleAdmin, p, "/users")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "admins only", rec.Body.String())
}

func TestGuard_APIMode(t *testing.T) {
	g := NewGuard(GuardConfig{API: true})

	rec := serveGuarded(t, g, "", newTestProvider(t, NewMemoryStore()), "/api/v1/me")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unauthorized"`)

	p := newTestProvider(t, NewMemoryStore())
	_, err := p.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)
	rec = serveGuarded(t, g, domain.RoleSeller, p, "/api/v1/seller/dashboard")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient permissions")
}

func TestAllow(t *testing.T) {
	assert.False(t, Allow("", nil))
	assert.True(t, Allow("", sessionWithRole(domain.RoleCustomer)))
	assert.False(t, Allow(domain.RoleSeller, sessionWithRole(domain.RoleCustomer)))
	assert.True(t, Allow(domain.RoleSeller, sessionWithRole(domain.RoleAdmin)))
}
