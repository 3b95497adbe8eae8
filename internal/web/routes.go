package web

import (
	"net/http"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/identity"
	"github.com/go-chi/chi/v5"
)

// Access is the least privilege a route requires.
type Access int

// Access levels.
const (
	AccessPublic Access = iota
	AccessCustomer
	AccessSeller
	AccessAdmin
)

// Role maps the access level onto the role hierarchy.
func (a Access) Role() domain.Role {
	switch a {
	case AccessCustomer:
		return domain.RoleCustomer
	case AccessSeller:
		return domain.RoleSeller
	case AccessAdmin:
		return domain.RoleAdmin
	}
	return ""
}

// Route is one page and the access it requires.
type Route struct {
	Method  string
	Path    string
	Access  Access
	Handler http.HandlerFunc
}

// Routes returns the site's route table.
func (h *Handler) Routes() []Route {
	return []Route{
		{http.MethodGet, "/", AccessPublic, h.Home},
		{http.MethodGet, "/auctions", AccessPublic, h.Auctions},
		{http.MethodGet, "/artwork/{id}", AccessPublic, h.Artwork},
		{http.MethodGet, "/artists", AccessPublic, h.Artists},
		{http.MethodGet, "/artist/{id}", AccessPublic, h.Artist},
		{http.MethodGet, "/about", AccessPublic, h.About},

		{http.MethodGet, "/login", AccessPublic, h.LoginPage},
		{http.MethodPost, "/login", AccessPublic, h.Login},
		{http.MethodGet, "/signup", AccessPublic, h.SignupPage},
		{http.MethodPost, "/signup", AccessPublic, h.Signup},
		{http.MethodGet, "/forgot-password", AccessPublic, h.ForgotPasswordPage},
		{http.MethodPost, "/forgot-password", AccessPublic, h.ForgotPassword},
		{http.MethodGet, "/reset-password", AccessPublic, h.ResetPasswordPage},
		{http.MethodPost, "/reset-password", AccessPublic, h.ResetPassword},
		{http.MethodPost, "/logout", AccessPublic, h.Logout},

		{http.MethodGet, "/profile", AccessCustomer, h.Profile},
		{http.MethodGet, "/seller-application", AccessCustomer, h.SellerApplicationPage},
		{http.MethodPost, "/seller-application", AccessCustomer, h.SubmitSellerApplication},
		{http.MethodGet, "/bids", AccessCustomer, h.Bids},
		{http.MethodPost, "/artwork/{id}/bid", AccessCustomer, h.PlaceBid},

		{http.MethodGet, "/seller/dashboard", AccessSeller, h.SellerDashboard},

		{http.MethodGet, "/admindashboard", AccessAdmin, h.AdminDashboard},
		{http.MethodGet, "/users", AccessAdmin, h.Users},
		{http.MethodGet, "/items", AccessAdmin, h.Items},
		{http.MethodGet, "/seller-applications", AccessAdmin, h.SellerApplications},
		{http.MethodPost, "/seller-applications/{id}/{decision}", AccessAdmin, h.ReviewSellerApplication},
		{http.MethodGet, "/auction-approvals", AccessAdmin, h.AuctionApprovals},
		{http.MethodPost, "/auction-approvals/{id}/{decision}", AccessAdmin, h.ReviewAuction},
	}
}

// Register mounts the route table on r, wrapping protected routes in guard.
func (h *Handler) Register(r chi.Router, guard *identity.Guard) {
	for _, route := range h.Routes() {
		if route.Access == AccessPublic {
			r.Method(route.Method, route.Path, route.Handler)
			continue
		}
		r.With(guard.Require(route.Access.Role())).Method(route.Method, route.Path, route.Handler)
	}
	r.NotFound(h.NotFound)
}
