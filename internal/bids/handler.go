package bids

import (
	"encoding/json"
	"net/http"

	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/identity"
	"github.com/bissquit/auctionhub/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: catalog.ErrAuctionNotFound, Status: http.StatusNotFound},
	{Error: ErrAuctionClosed, Status: http.StatusConflict},
	{Error: ErrBidTooLow, Status: http.StatusUnprocessableEntity},
}

// Handler handles the bid API.
type Handler struct {
	service      *Service
	validator    *validator.Validate
	secureCookie bool
}

// NewHandler creates a new bid handler.
func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{
		service:      service,
		validator:    validator.New(),
		secureCookie: secureCookie,
	}
}

// RegisterRoutes registers bid routes. They require a session.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/bids", h.ListBids)
	r.Post("/auctions/{id}/bids", h.PlaceBid)
}

// PlaceBidRequest represents the request body for placing a bid.
type PlaceBidRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// ListBids handles GET /bids.
func (h *Handler) ListBids(w http.ResponseWriter, r *http.Request) {
	httputil.Success(w, http.StatusOK, h.service.Refresh(r.Context(), Read(r)))
}

// PlaceBid handles POST /auctions/{id}/bids.
func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var req PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	bid, all, err := h.service.PlaceBid(r.Context(), PlaceBidInput{
		AuctionID: chi.URLParam(r, "id"),
		Amount:    req.Amount,
		Bidder:    Bidder(r),
	}, Read(r))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	if err := Write(w, all, h.secureCookie); err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}
	httputil.Success(w, http.StatusCreated, bid)
}

// Bidder names the request's session user, or "" without a session.
func Bidder(r *http.Request) string {
	p := identity.FromContext(r.Context())
	if p == nil {
		return ""
	}
	s, ok := p.Current()
	if !ok {
		return ""
	}
	return s.DisplayName()
}

// MatchError exposes the bid error table for form handlers.
func MatchError(err error) (httputil.ErrorMapping, bool) {
	return httputil.MatchError(err, errorMappings)
}
