package dashboard

import (
	"net/http"

	"github.com/bissquit/auctionhub/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler serves dashboard data as JSON.
type Handler struct {
	service *Service
}

// NewHandler creates a dashboard handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterSellerRoutes registers routes for sellers.
func (h *Handler) RegisterSellerRoutes(r chi.Router) {
	r.Get("/seller/dashboard", h.Seller)
}

// RegisterAdminRoutes registers routes for admins.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/dashboard", h.Admin)
}

// Admin handles GET /admin/dashboard.
func (h *Handler) Admin(w http.ResponseWriter, _ *http.Request) {
	httputil.Success(w, http.StatusOK, h.service.Admin())
}

// Seller handles GET /seller/dashboard.
func (h *Handler) Seller(w http.ResponseWriter, _ *http.Request) {
	httputil.Success(w, http.StatusOK, h.service.Seller())
}
