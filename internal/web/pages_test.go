package web

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicPages(t *testing.T) {
	site := newSite(t)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Ending soon"},
		{"/auctions", "Tide at Dusk"},
		{"/artwork/1", "Place a bid"},
		{"/artists", "Kenji Watanabe"},
		{"/artist/artist-1", "Elena Marquez"},
		{"/about", "About AuctionHub"},
		{"/login", "Demo accounts"},
		{"/signup", "Create account"},
		{"/forgot-password", "Send reset instructions"},
		{"/reset-password?token=abc", "Reset password"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := site.get(tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestPublicPages_HideUnreviewedAuctions(t *testing.T) {
	site := newSite(t)

	assert.NotContains(t, site.get("/auctions").Body.String(), "Tea Bowl Study")
	assert.Equal(t, http.StatusNotFound, site.get("/artwork/5").Code)
	assert.Equal(t, http.StatusNotFound, site.get("/artist/nobody").Code)

	rec := site.get("/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestArtwork_ClosedAuctionHasNoBidForm(t *testing.T) {
	site := newSite(t)

	rec := site.get("/artwork/4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This auction is closed.")
	assert.NotContains(t, rec.Body.String(), "Place a bid")
}

func TestProtectedPages_RedirectToLogin(t *testing.T) {
	site := newSite(t)

	for _, path := range []string{"/profile", "/bids", "/seller/dashboard", "/admindashboard", "/users"} {
		rec := site.get(path)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login?next="+url.QueryEscape(path), rec.Header().Get("Location"), path)
	}
}

func TestProtectedPages_RoleHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		allowed  []string
		denied   []string
	}{
		{
			name:     "customer",
			user:     "customer",
			password: "customer123",
			allowed:  []string{"/profile", "/bids", "/seller-application"},
			denied:   []string{"/seller/dashboard", "/admindashboard", "/items"},
		},
		{
			name:     "seller",
			user:     "seller",
			password: "seller123",
			allowed:  []string{"/profile", "/seller/dashboard"},
			denied:   []string{"/admindashboard", "/seller-applications"},
		},
		{
			name:     "admin",
			user:     "admin@example.com",
			password: "admin123",
			allowed:  []string{"/profile", "/seller/dashboard", "/admindashboard", "/users", "/items", "/seller-applications", "/auction-approvals"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := newSite(t)
			site.login(tt.user, tt.password)

			for _, path := range tt.allowed {
				assert.Equal(t, http.StatusOK, site.get(path).Code, path)
			}
			for _, path := range tt.denied {
				rec := site.get(path)
				assert.Equal(t, http.StatusForbidden, rec.Code, path)
				assert.Contains(t, rec.Body.String(), "Access denied")
			}
		})
	}
}

func TestLogin_LandingAndNext(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		next     string
		want     string
	}{
		{"customer lands on home", "customer", "customer123", "", "/"},
		{"seller lands on dashboard", "seller", "seller123", "", "/seller/dashboard"},
		{"admin lands on dashboard", "admin", "admin123", "", "/admindashboard"},
		{"next wins", "admin", "admin123", "/users", "/users"},
		{"external next ignored", "customer", "customer123", "https://evil.example/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := newSite(t)
			rec := site.post("/login", url.Values{
				"identifier": {tt.user},
				"password":   {tt.password},
				"next":       {tt.next},
			})
			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestLogin_FlashShownOnce(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")

	assert.Contains(t, site.get("/").Body.String(), "Welcome back, Customer User")
	assert.NotContains(t, site.get("/").Body.String(), "Welcome back")
}

func TestLogin_Errors(t *testing.T) {
	site := newSite(t)

	rec := site.post("/login", url.Values{"identifier": {"customer"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter your username or email and password.")
	assert.Contains(t, rec.Body.String(), `value="customer"`)
}

func TestLogin_Fallback(t *testing.T) {
	site := newSite(t)
	site.login("jane@mail.test", "whatever")

	rec := site.get("/profile")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "jane@mail.test")
	assert.Contains(t, body, "Customer")
}

func TestLogin_WhileSignedInRedirects(t *testing.T) {
	site := newSite(t)
	site.login("admin", "admin123")

	rec := site.get("/login")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admindashboard", rec.Header().Get("Location"))

	rec = site.post("/login", url.Values{"identifier": {"customer"}, "password": {"customer123"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admindashboard", rec.Header().Get("Location"))
}

func TestLogout(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")

	rec := site.post("/logout", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Contains(t, site.get("/").Body.String(), "You have been logged out")
	assert.Equal(t, http.StatusSeeOther, site.get("/profile").Code)

	rec = site.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code, "logout without a session still succeeds")
}

func TestSignup(t *testing.T) {
	t.Run("creates customer session", func(t *testing.T) {
		site := newSite(t)
		rec := site.post("/signup", url.Values{
			"username":        {"newbie"},
			"email":           {"newbie@example.com"},
			"name":            {"New Bie"},
			"password":        {"longenough"},
			"confirmPassword": {"longenough"},
		})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		body := site.get("/profile").Body.String()
		assert.Contains(t, body, "newbie@example.com")
		assert.Contains(t, body, "Account created successfully")
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		site := newSite(t)
		rec := site.post("/signup", url.Values{
			"username":        {"newbie"},
			"email":           {"newbie@example.com"},
			"password":        {"longenough"},
			"confirmPassword": {"different"},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Passwords do not match.")
		assert.Contains(t, rec.Body.String(), `value="newbie"`)
	})
}

func TestForgotAndResetPassword(t *testing.T) {
	site := newSite(t)

	rec := site.post("/forgot-password", url.Values{"email": {"nobody@example.com"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "we have sent instructions")

	rec = site.post("/forgot-password", url.Values{"email": {"not-an-email"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a valid email address.")

	rec = site.post("/reset-password", url.Values{"password": {"short"}, "confirmPassword": {"short"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 8 characters")

	rec = site.post("/reset-password", url.Values{"password": {"longenough"}, "confirmPassword": {"longenougH"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passwords do not match.")

	rec = site.post("/reset-password", url.Values{"password": {"longenough"}, "confirmPassword": {"longenough"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
