// Package web serves the server-rendered auction site.
package web

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/bissquit/auctionhub/internal/bids"
	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/dashboard"
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/identity"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
	"github.com/bissquit/auctionhub/internal/sellers"
	"github.com/go-playground/validator/v10"
)

// DemoAccount is a login advertised on the login page.
type DemoAccount struct {
	Username string
	Password string
	Role     domain.Role
}

// Config wires the page handlers to their services.
type Config struct {
	Catalog      *catalog.Service
	Bids         *bids.Service
	Sellers      *sellers.Service
	Dashboard    *dashboard.Service
	Accounts     []identity.Identity
	DemoAccounts []DemoAccount
	SecureCookie bool
}

// Handler serves HTML pages.
type Handler struct {
	cfg       Config
	renderer  *Renderer
	validator *validator.Validate
}

// NewHandler creates a page handler and parses its templates.
func NewHandler(cfg Config) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})

	return &Handler{cfg: cfg, renderer: renderer, validator: v}, nil
}

// newPage builds template data for the current request and consumes the
// pending flash notice.
func (h *Handler) newPage(w http.ResponseWriter, r *http.Request, title string) *PageData {
	page := &PageData{
		Title:  title,
		Path:   r.URL.Path,
		Form:   map[string]string{},
		Errors: map[string]string{},
	}

	if p := identity.FromContext(r.Context()); p != nil {
		if s, ok := p.Current(); ok {
			page.Session = &s
		}
		page.IsAdmin = p.IsAdmin()
		page.IsSeller = p.IsSeller()
	}

	if notice, ok := ReadFlash(w, r, h.cfg.SecureCookie); ok {
		page.Flash = &notice
	}
	return page
}

func (h *Handler) adminPage(w http.ResponseWriter, r *http.Request, title string) *PageData {
	page := h.newPage(w, r, title)
	page.AdminShell = true
	return page
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, page *PageData) {
	h.renderer.Render(w, r, status, name, page)
}

func (h *Handler) flash(w http.ResponseWriter, kind NoticeKind, message string) {
	WriteFlash(w, Notice{Kind: kind, Message: message}, h.cfg.SecureCookie)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	ctxlog.FromContext(r.Context()).Error("internal error", "error", err)
	page := h.newPage(w, r, "Something went wrong")
	page.Error = "Something went wrong. Please try again."
	h.render(w, r, http.StatusInternalServerError, "error", page)
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "not_found", h.newPage(w, r, "Page not found"))
}

// Forbidden renders the 403 page used by the route guard.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, "forbidden", h.newPage(w, r, "Access denied"))
}

// Loading renders the placeholder shown while the session is not ready.
func (h *Handler) Loading(w http.ResponseWriter, r *http.Request) {
	page := &PageData{Title: "Loading", Path: r.URL.Path}
	h.render(w, r, http.StatusServiceUnavailable, "loading", page)
}

func session(r *http.Request) (domain.Session, bool) {
	p := identity.FromContext(r.Context())
	if p == nil {
		return domain.Session{}, false
	}
	return p.Current()
}

// landing is where a fresh session goes when no next page was requested.
func landing(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "/admindashboard"
	case domain.RoleSeller:
		return "/seller/dashboard"
	}
	return "/"
}

// fieldMessage turns a validator tag into a form message.
func fieldMessage(label, tag, param string) string {
	switch tag {
	case "required":
		return label + " is required."
	case "email":
		return "Please enter a valid email address."
	case "min":
		return label + " must be at least " + param + " characters."
	case "max":
		return label + " must be at most " + param + " characters."
	case "eqfield":
		return "Passwords do not match."
	case "gt":
		return label + " must be greater than " + param + "."
	}
	return label + " is invalid."
}

// validateForm validates form and returns messages keyed by form field.
func (h *Handler) validateForm(form interface{}, labels map[string]string) map[string]string {
	err := h.validator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		label := labels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		out[fe.Field()] = fieldMessage(label, fe.Tag(), fe.Param())
	}
	return out
}
