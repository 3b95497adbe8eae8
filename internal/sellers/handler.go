package sellers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bissquit/auctionhub/internal/identity"
	"github.com/bissquit/auctionhub/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrApplicationNotFound, Status: http.StatusNotFound},
	{Error: ErrAlreadyReviewed, Status: http.StatusConflict},
}

// Handler handles HTTP requests for seller applications.
type Handler struct {
	service *Service
}

// NewHandler creates a new seller application handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers routes for signed-in customers.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/seller-applications", h.Submit)
}

// RegisterAdminRoutes registers review routes (admin only).
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/admin/seller-applications", h.List)
	r.Post("/admin/seller-applications/{id}/approve", h.Approve)
	r.Post("/admin/seller-applications/{id}/reject", h.Reject)
}

// Submit handles POST /seller-applications.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	app, err := h.service.Submit(r.Context(), req, submitter(r))
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httputil.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": map[string]interface{}{
					"message": "validation error",
					"details": fieldErrors(verr),
				},
			})
			return
		}
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusCreated, app)
}

// List handles GET /admin/seller-applications.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.List(r.Context(), ListFilter{})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, apps)
}

// Approve handles POST /admin/seller-applications/{id}/approve.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	app, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, app)
}

// Reject handles POST /admin/seller-applications/{id}/reject.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	app, err := h.service.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, app)
}

func fieldErrors(verr *ValidationError) []httputil.FieldError {
	out := make([]httputil.FieldError, 0, len(verr.Fields))
	for _, name := range fieldOrder {
		if msg, ok := verr.Fields[name]; ok {
			out = append(out, httputil.FieldError{Field: name, Message: msg})
		}
	}
	return out
}

var fieldOrder = []string{
	"firstName", "lastName", "username", "email",
	"phone", "category", "background", "agreesToTerms",
}

func submitter(r *http.Request) string {
	if p := identity.FromContext(r.Context()); p != nil {
		if s, ok := p.Current(); ok {
			return s.ID
		}
	}
	return ""
}

// MatchError exposes the review error table for form handlers.
func MatchError(err error) (httputil.ErrorMapping, bool) {
	return httputil.MatchError(err, errorMappings)
}
