package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bissquit/auctionhub/internal/bids"
	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/dashboard"
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/identity"
	"github.com/bissquit/auctionhub/internal/sellers"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testAccounts = []identity.Account{
	{Username: "admin", Email: "admin@example.com", Name: "Admin User", Role: domain.RoleAdmin, Password: "admin123"},
	{Username: "seller", Email: "seller@example.com", Name: "Seller User", Role: domain.RoleSeller, Password: "seller123"},
	{Username: "customer", Email: "customer@example.com", Name: "Customer User", Role: domain.RoleCustomer, Password: "customer123"},
}

// browser drives the site through its router and keeps cookies between
// requests.
type browser struct {
	t       *testing.T
	handler http.Handler
	jar     map[string]*http.Cookie
	sellers *sellers.Service
}

func newSite(t *testing.T) *browser {
	t.Helper()

	cat := catalog.NewService(catalog.NewMemoryRepository(
		catalog.FixtureAuctions(time.Now()), catalog.FixtureArtists(),
	))
	auth, err := identity.NewAllowList(testAccounts, bcrypt.MinCost)
	require.NoError(t, err)
	codec, err := identity.NewTokenCodec(testSecret)
	require.NoError(t, err)

	apps := sellers.NewService(sellers.NewMemoryRepository())
	h, err := NewHandler(Config{
		Catalog:   cat,
		Bids:      bids.NewService(cat),
		Sellers:   apps,
		Dashboard: dashboard.NewService(dashboard.Fixtures{}),
		Accounts:  auth.Identities(),
		DemoAccounts: []DemoAccount{
			{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		},
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(identity.Middleware(auth,
		identity.CookieStoreFactory(codec, identity.CookieSettings{Name: "test_session"}),
		identity.ProviderConfig{AllowFallback: true},
	))
	h.Register(r, identity.NewGuard(identity.GuardConfig{
		LoginPath:   "/login",
		Forbidden:   http.HandlerFunc(h.Forbidden),
		Placeholder: http.HandlerFunc(h.Loading),
	}))

	return &browser{t: t, handler: r, jar: map[string]*http.Cookie{}, sellers: apps}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.jar {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.jar, c.Name)
			continue
		}
		b.jar[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) login(identifier, password string) *httptest.ResponseRecorder {
	b.t.Helper()
	rec := b.post("/login", url.Values{"identifier": {identifier}, "password": {password}})
	require.Equal(b.t, http.StatusSeeOther, rec.Code, rec.Body.String())
	return rec
}
