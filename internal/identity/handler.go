package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrValidation, Status: http.StatusBadRequest},
	{Error: ErrAuthenticationRejected, Status: http.StatusUnauthorized},
	{Error: ErrSessionActive, Status: http.StatusConflict},
	{Error: ErrNotReady, Status: http.StatusServiceUnavailable},
}

// Handler handles the JSON session API.
type Handler struct {
	validator *validator.Validate
}

// NewHandler creates a new identity handler.
func NewHandler() *Handler {
	return &Handler{validator: validator.New()}
}

// RegisterRoutes registers public session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/signup", h.Signup)
		r.Post("/logout", h.Logout)
	})
}

// RegisterProtectedRoutes registers routes that require a session.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/me", h.Me)
}

// LoginRequest represents login request body.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// SignupRequest represents signup request body.
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"max=128"`
}

// SessionResponse wraps the current session.
type SessionResponse struct {
	User     domain.Session `json:"user"`
	IsAdmin  bool           `json:"is_admin"`
	IsSeller bool           `json:"is_seller"`
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	p, ok := h.provider(w, r)
	if !ok {
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	if _, err := p.Login(r.Context(), req.Identifier, req.Password); err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, sessionResponse(p))
}

// Signup handles POST /auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	p, ok := h.provider(w, r)
	if !ok {
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	_, err := p.Signup(r.Context(), SignupInput(req))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusCreated, sessionResponse(p))
}

// Logout handles POST /auth/logout. It succeeds without a session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	p, ok := h.provider(w, r)
	if !ok {
		return
	}

	if err := p.Logout(r.Context()); err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := h.provider(w, r)
	if !ok {
		return
	}
	if _, ok := p.Current(); !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	httputil.Success(w, http.StatusOK, sessionResponse(p))
}

func (h *Handler) provider(w http.ResponseWriter, r *http.Request) (*Provider, bool) {
	p := FromContext(r.Context())
	if p == nil {
		httputil.HandleError(r.Context(), w, errors.New("session middleware not installed"), nil)
		return nil, false
	}
	return p, true
}

func sessionResponse(p *Provider) SessionResponse {
	s, _ := p.Current()
	return SessionResponse{
		User:     s,
		IsAdmin:  p.IsAdmin(),
		IsSeller: p.IsSeller(),
	}
}
