// Package catalog provides the auction and artist catalog with moderation.
package catalog

import (
	"net/http"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrAuctionNotFound, Status: http.StatusNotFound},
	{Error: ErrArtistNotFound, Status: http.StatusNotFound},
	{Error: ErrInvalidTransition, Status: http.StatusConflict},
}

// Handler handles HTTP requests for the catalog module.
type Handler struct {
	service *Service
}

// NewHandler creates a new catalog handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers catalog browsing routes.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/auctions", h.ListAuctions)
	r.Get("/auctions/{id}", h.GetAuction)
	r.Get("/artists", h.ListArtists)
	r.Get("/artists/{id}", h.GetArtist)
}

// RegisterAdminRoutes registers moderation routes (admin only).
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/auctions", h.ListAllAuctions)
	r.Post("/admin/auctions/{id}/approve", h.ApproveAuction)
	r.Post("/admin/auctions/{id}/reject", h.RejectAuction)
}

// ListAuctions handles GET /auctions. Visitors only see active and ended auctions.
func (h *Handler) ListAuctions(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.service.ListPublicAuctions(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]AuctionView, 0, len(auctions))
		for _, a := range auctions {
			if string(a.Status) == status {
				filtered = append(filtered, a)
			}
		}
		auctions = filtered
	}

	httputil.Success(w, http.StatusOK, auctions)
}

// GetAuction handles GET /auctions/{id}.
func (h *Handler) GetAuction(w http.ResponseWriter, r *http.Request) {
	auction, err := h.service.GetAuction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}
	if auction.Status == domain.AuctionStatusPending || auction.Status == domain.AuctionStatusRejected {
		httputil.HandleError(r.Context(), w, ErrAuctionNotFound, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, auction)
}

// ListArtists handles GET /artists.
func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.ListArtists(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, artists)
}

// GetArtist handles GET /artists/{id}.
func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := h.service.GetArtist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, artist)
}

// ListAllAuctions handles GET /admin/auctions with an optional status filter.
func (h *Handler) ListAllAuctions(w http.ResponseWriter, r *http.Request) {
	filter := AuctionFilter{}
	if s := domain.AuctionStatus(r.URL.Query().Get("status")); s != "" {
		if !s.IsValid() {
			httputil.Error(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &s
	}

	auctions, err := h.service.ListAuctions(r.Context(), filter)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, auctions)
}

// ApproveAuction handles POST /admin/auctions/{id}/approve.
func (h *Handler) ApproveAuction(w http.ResponseWriter, r *http.Request) {
	auction, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, auction)
}

// RejectAuction handles POST /admin/auctions/{id}/reject.
func (h *Handler) RejectAuction(w http.ResponseWriter, r *http.Request) {
	auction, err := h.service.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, auction)
}
