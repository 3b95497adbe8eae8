package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/bissquit/auctionhub/internal/bids"
	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/dashboard"
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/sellers"
	"github.com/go-chi/chi/v5"
)

type profileView struct {
	Applications []domain.SellerApplication
	BidCount     int
}

// Profile handles GET /profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	s, _ := session(r)
	apps, err := h.cfg.Sellers.List(r.Context(), sellers.ListFilter{SubmittedBy: s.ID})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.newPage(w, r, "Profile")
	page.Data = profileView{Applications: apps, BidCount: len(bids.Read(r))}
	h.render(w, r, http.StatusOK, "profile", page)
}

type sellerApplicationView struct {
	Categories []string
	MaxWords   int
}

func (h *Handler) sellerApplicationPage(w http.ResponseWriter, r *http.Request) *PageData {
	page := h.newPage(w, r, "Become a seller")
	page.Data = sellerApplicationView{Categories: domain.SellerCategories, MaxWords: sellers.MaxBackgroundWords}
	return page
}

// SellerApplicationPage handles GET /seller-application.
func (h *Handler) SellerApplicationPage(w http.ResponseWriter, r *http.Request) {
	page := h.sellerApplicationPage(w, r)
	if s, ok := session(r); ok {
		page.Form["email"] = s.Email
		page.Form["username"] = s.Username
	}
	h.render(w, r, http.StatusOK, "seller_application", page)
}

// SubmitSellerApplication handles POST /seller-application.
func (h *Handler) SubmitSellerApplication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	f := r.PostForm
	input := sellers.ApplicationInput{
		FirstName:     f.Get("firstName"),
		LastName:      f.Get("lastName"),
		Username:      f.Get("username"),
		Email:         f.Get("email"),
		Phone:         f.Get("phone"),
		Category:      f.Get("category"),
		Background:    f.Get("background"),
		AgreesToTerms: f.Get("agreesToTerms") == "on" || f.Get("agreesToTerms") == "true",
	}

	s, _ := session(r)
	_, err := h.cfg.Sellers.Submit(r.Context(), input, s.ID)
	if err == nil {
		h.flash(w, NoticeSuccess, "Application submitted successfully")
		h.redirect(w, r, "/profile")
		return
	}

	var verr *sellers.ValidationError
	if !errors.As(err, &verr) {
		h.serverError(w, r, err)
		return
	}

	page := h.sellerApplicationPage(w, r)
	page.Error = "Please correct the highlighted fields."
	page.Errors = verr.Fields
	for _, name := range []string{"firstName", "lastName", "username", "email", "phone", "category", "background"} {
		page.Form[name] = f.Get(name)
	}
	if input.AgreesToTerms {
		page.Form["agreesToTerms"] = "on"
	}
	h.render(w, r, http.StatusUnprocessableEntity, "seller_application", page)
}

// Bids handles GET /bids.
func (h *Handler) Bids(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(w, r, "My bids")
	page.Data = h.cfg.Bids.Refresh(r.Context(), bids.Read(r))
	h.render(w, r, http.StatusOK, "bids", page)
}

// PlaceBid handles POST /artwork/{id}/bid.
func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	raw := strings.ReplaceAll(strings.TrimSpace(r.PostForm.Get("amount")), ",", "")
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount <= 0 {
		h.bidFailed(w, r, "Please enter a whole dollar amount.")
		return
	}

	bid, all, err := h.cfg.Bids.PlaceBid(r.Context(), bids.PlaceBidInput{
		AuctionID: chi.URLParam(r, "id"),
		Amount:    amount,
		Bidder:    bids.Bidder(r),
	}, bids.Read(r))
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrAuctionNotFound):
		h.NotFound(w, r)
		return
	default:
		if _, ok := bids.MatchError(err); !ok {
			h.serverError(w, r, err)
			return
		}
		h.bidFailed(w, r, bidMessage(err))
		return
	}

	if err := bids.Write(w, all, h.cfg.SecureCookie); err != nil {
		h.serverError(w, r, err)
		return
	}
	h.flash(w, NoticeSuccess, "Bid placed on "+bid.Title)
	h.redirect(w, r, "/bids")
}

func (h *Handler) bidFailed(w http.ResponseWriter, r *http.Request, message string) {
	page, _, ok := h.artworkPage(w, r)
	if !ok {
		return
	}
	page.Errors["amount"] = message
	page.Form["amount"] = r.PostForm.Get("amount")
	h.render(w, r, http.StatusUnprocessableEntity, "artwork", page)
}

func bidMessage(err error) string {
	switch {
	case errors.Is(err, bids.ErrAuctionClosed):
		return "This auction is no longer accepting bids."
	case errors.Is(err, bids.ErrBidTooLow):
		return "Your bid must be higher than the current bid."
	}
	return "Your bid could not be placed."
}

type sellerDashboardView struct {
	Name      string
	Dashboard dashboard.Seller
}

// SellerDashboard handles GET /seller/dashboard.
func (h *Handler) SellerDashboard(w http.ResponseWriter, r *http.Request) {
	s, _ := session(r)
	page := h.newPage(w, r, "Seller dashboard")
	page.Data = sellerDashboardView{Name: s.DisplayName(), Dashboard: h.cfg.Dashboard.Seller()}
	h.render(w, r, http.StatusOK, "seller_dashboard", page)
}
