package web

import (
	"errors"
	"net/http"

	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/dashboard"
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/sellers"
	"github.com/go-chi/chi/v5"
)

// AdminDashboard handles GET /admindashboard.
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	page := h.adminPage(w, r, "Dashboard")
	page.Data = h.cfg.Dashboard.Admin()
	h.render(w, r, http.StatusOK, "admin_dashboard", page)
}

// UserRow is one line of the admin users table.
type UserRow struct {
	Name     string
	Username string
	Email    string
	Role     string
	Joined   string
}

// Users handles GET /users.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	rows := make([]UserRow, 0, len(h.cfg.Accounts))
	for _, a := range h.cfg.Accounts {
		rows = append(rows, UserRow{
			Name:     a.Name,
			Username: a.Username,
			Email:    a.Email,
			Role:     a.Role.Label(),
			Joined:   "Configured",
		})
	}
	for _, u := range dashboard.FixtureRecentUsers() {
		rows = append(rows, UserRow{Name: u.Name, Role: u.Badge, Joined: u.Registered})
	}

	page := h.adminPage(w, r, "Users")
	page.Data = rows
	h.render(w, r, http.StatusOK, "users", page)
}

// Items handles GET /items.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.cfg.Catalog.ListAuctions(r.Context(), catalog.AuctionFilter{})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.adminPage(w, r, "Items")
	page.Data = auctions
	h.render(w, r, http.StatusOK, "items", page)
}

// SellerApplications handles GET /seller-applications.
func (h *Handler) SellerApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.cfg.Sellers.List(r.Context(), sellers.ListFilter{})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.adminPage(w, r, "Seller Applications")
	page.Data = apps
	h.render(w, r, http.StatusOK, "seller_applications", page)
}

// ReviewSellerApplication handles POST /seller-applications/{id}/{decision}.
func (h *Handler) ReviewSellerApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		app *domain.SellerApplication
		err error
	)
	switch chi.URLParam(r, "decision") {
	case "approve":
		app, err = h.cfg.Sellers.Approve(r.Context(), id)
	case "reject":
		app, err = h.cfg.Sellers.Reject(r.Context(), id)
	default:
		h.NotFound(w, r)
		return
	}

	switch {
	case err == nil:
		h.flash(w, NoticeSuccess, "Application from "+app.FullName()+" "+string(app.Status))
	case errors.Is(err, sellers.ErrApplicationNotFound):
		h.NotFound(w, r)
		return
	case errors.Is(err, sellers.ErrAlreadyReviewed):
		h.flash(w, NoticeError, "This application has already been reviewed")
	default:
		h.serverError(w, r, err)
		return
	}
	h.redirect(w, r, "/seller-applications")
}

// AuctionApprovals handles GET /auction-approvals.
func (h *Handler) AuctionApprovals(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.cfg.Catalog.ListAuctions(r.Context(), catalog.AuctionFilter{Status: statusPtr(domain.AuctionStatusPending)})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.adminPage(w, r, "Auction Approvals")
	page.Data = auctions
	h.render(w, r, http.StatusOK, "auction_approvals", page)
}

// ReviewAuction handles POST /auction-approvals/{id}/{decision}.
func (h *Handler) ReviewAuction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		auction *domain.Auction
		err     error
	)
	switch chi.URLParam(r, "decision") {
	case "approve":
		auction, err = h.cfg.Catalog.Approve(r.Context(), id)
	case "reject":
		auction, err = h.cfg.Catalog.Reject(r.Context(), id)
	default:
		h.NotFound(w, r)
		return
	}

	switch {
	case err == nil:
		h.flash(w, NoticeSuccess, "\""+auction.Title+"\" is now "+string(auction.Status))
	case errors.Is(err, catalog.ErrAuctionNotFound):
		h.NotFound(w, r)
		return
	case errors.Is(err, catalog.ErrInvalidTransition):
		h.flash(w, NoticeError, "This auction is no longer pending review")
	default:
		h.serverError(w, r, err)
		return
	}
	h.redirect(w, r, "/auction-approvals")
}
