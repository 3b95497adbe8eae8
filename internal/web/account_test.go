package web

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/bissquit/auctionhub/internal/sellers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplication() url.Values {
	return url.Values{
		"firstName":     {"Maria"},
		"lastName":      {"Santos"},
		"username":      {"maria"},
		"email":         {"maria@gmail.com"},
		"phone":         {"09123456789"},
		"category":      {"Paintings"},
		"background":    {"I paint coastal landscapes in oil."},
		"agreesToTerms": {"on"},
	}
}

func TestBids_EmptyState(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")

	rec := site.get("/bids")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No bids placed yet.")
}

func TestPlaceBid(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")

	rec := site.post("/artwork/1/bid", url.Values{"amount": {"1,900"}})
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, "/bids", rec.Header().Get("Location"))

	body := site.get("/bids").Body.String()
	assert.Contains(t, body, "Bid placed on Tide at Dusk")
	assert.Contains(t, body, "$1,900")
	assert.Contains(t, body, "Elena Marquez")
	assert.Contains(t, body, "Leading")

	assert.Contains(t, site.get("/artwork/1").Body.String(), "$1,900")
}

func TestPlaceBid_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		amount string
		status int
		want   string
	}{
		{"too low", "/artwork/1/bid", "100", http.StatusUnprocessableEntity, "Your bid must be higher than the current bid."},
		{"equal to current", "/artwork/1/bid", "1850", http.StatusUnprocessableEntity, "Your bid must be higher than the current bid."},
		{"not a number", "/artwork/1/bid", "lots", http.StatusUnprocessableEntity, "Please enter a whole dollar amount."},
		{"ended auction", "/artwork/4/bid", "5000", http.StatusUnprocessableEntity, "This auction is no longer accepting bids."},
		{"pending auction", "/artwork/5/bid", "5000", http.StatusNotFound, "Page not found"},
		{"unknown auction", "/artwork/nope/bid", "5000", http.StatusNotFound, "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := newSite(t)
			site.login("customer", "customer123")

			rec := site.post(tt.path, url.Values{"amount": {tt.amount}})
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Contains(t, site.get("/bids").Body.String(), "No bids placed yet.")
		})
	}
}

func TestPlaceBid_RequiresSession(t *testing.T) {
	site := newSite(t)

	rec := site.post("/artwork/1/bid", url.Values{"amount": {"5000"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fartwork%2F1%2Fbid", rec.Header().Get("Location"))
}

func TestSellerApplication_Form(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")

	rec := site.get("/seller-application")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="customer@example.com"`, "email defaults to the session email")
	assert.Contains(t, body, "Mixed Media")
}

func TestSellerApplication_Invalid(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")

	form := validApplication()
	form.Set("phone", "12345")
	form.Set("email", "maria@hotmail.com")
	form.Del("agreesToTerms")

	rec := site.post("/seller-application", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Phone number must be exactly 11 digits and start with 09")
	assert.Contains(t, body, "Please input registered email.")
	assert.Contains(t, body, "Please agree to the terms and conditions.")
	assert.Contains(t, body, `value="Maria"`, "entered values are kept")
}

func TestSellerApplication_ReviewFlow(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")

	rec := site.post("/seller-application", validApplication())
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	assert.Equal(t, "/profile", rec.Header().Get("Location"))

	body := site.get("/profile").Body.String()
	assert.Contains(t, body, "Application submitted successfully")
	assert.Contains(t, body, "Pending")

	site.post("/logout", nil)
	site.login("admin", "admin123")

	body = site.get("/seller-applications").Body.String()
	assert.Contains(t, body, "Maria Santos")
	assert.Contains(t, body, "maria@gmail.com")
}

func TestSellerApplications_Approve(t *testing.T) {
	site := newSite(t)
	site.login("customer", "customer123")
	require.Equal(t, http.StatusSeeOther, site.post("/seller-application", validApplication()).Code)
	app := firstApplicationID(t, site)

	site.post("/logout", nil)
	site.login("admin", "admin123")

	rec := site.post("/seller-applications/"+app+"/approve", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/seller-applications", rec.Header().Get("Location"))

	body := site.get("/seller-applications").Body.String()
	assert.Contains(t, body, "Application from Maria Santos approved")
	assert.Contains(t, body, "Approved")

	site.post("/seller-applications/"+app+"/reject", nil)
	assert.Contains(t, site.get("/seller-applications").Body.String(), "This application has already been reviewed")

	assert.Equal(t, http.StatusNotFound, site.post("/seller-applications/"+app+"/archive", nil).Code)
	assert.Equal(t, http.StatusNotFound, site.post("/seller-applications/missing/approve", nil).Code)
}

func firstApplicationID(t *testing.T, site *browser) string {
	t.Helper()
	apps, err := site.sellers.List(t.Context(), sellers.ListFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, apps)
	return apps[0].ID
}

func TestAuctionApprovals(t *testing.T) {
	site := newSite(t)
	site.login("admin", "admin123")

	body := site.get("/auction-approvals").Body.String()
	assert.Contains(t, body, "Tea Bowl Study")
	assert.Contains(t, body, "Lagos Circuit")

	rec := site.post("/auction-approvals/5/approve", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auction-approvals", rec.Header().Get("Location"))

	body = site.get("/auction-approvals").Body.String()
	assert.Contains(t, body, "is now active")
	assert.NotContains(t, body, "Tea Bowl Study")
	assert.Contains(t, site.get("/auctions").Body.String(), "Tea Bowl Study")

	require.Equal(t, http.StatusSeeOther, site.post("/auction-approvals/6/reject", nil).Code)
	assert.Contains(t, site.get("/auction-approvals").Body.String(), "No auctions are waiting for approval.")

	site.post("/auction-approvals/5/reject", nil)
	assert.Contains(t, site.get("/auction-approvals").Body.String(), "This auction is no longer pending review")
}

func TestDashboards(t *testing.T) {
	t.Run("seller", func(t *testing.T) {
		site := newSite(t)
		site.login("seller", "seller123")

		body := site.get("/seller/dashboard").Body.String()
		assert.Contains(t, body, "Welcome, Seller User")
		assert.Contains(t, body, "$25,000")
		assert.Contains(t, body, "Total Bidders")
	})

	t.Run("admin", func(t *testing.T) {
		site := newSite(t)
		site.login("admin", "admin123")

		body := site.get("/admindashboard").Body.String()
		assert.Contains(t, body, "Weekly Sales")
		assert.Contains(t, body, "$1,234,567")
		assert.Contains(t, body, "Increased by 12.5%")
		assert.Contains(t, body, "Decreased by 3.2%")
		assert.Contains(t, body, "Direct: 35%")
		assert.Contains(t, body, "Jane Smith")
		assert.Contains(t, body, "<svg")
		assert.Contains(t, body, `class="active">Dashboard`)
		assert.Contains(t, body, "admin@example.com")
	})
}

func TestUsersAndItems(t *testing.T) {
	site := newSite(t)
	site.login("admin", "admin123")

	body := site.get("/users").Body.String()
	assert.Contains(t, body, "seller@example.com")
	assert.Contains(t, body, "Michael Johnson")

	body = site.get("/items").Body.String()
	for _, title := range []string{"Tide at Dusk", "Harbour Morning", "Tea Bowl Study"} {
		assert.Contains(t, body, title)
	}
}
