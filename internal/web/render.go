package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
	"github.com/bissquit/auctionhub/internal/pkg/format"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer renders pages inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template together with the layout.
func NewRenderer() (*Renderer, error) {
	funcMap := template.FuncMap{
		"number":   format.Number,
		"currency": format.Currency,
		"title":    format.Title,
		"date":     formatDate,
		"until":    formatUntil,
		"active":   isActive,
	}

	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templatesFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(page string) bool {
	_, ok := r.pages[page]
	return ok
}

// Render writes page with status. Rendering happens into a buffer so a
// template error never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, data *PageData) {
	tmpl, ok := r.pages[page]
	if !ok {
		ctxlog.FromContext(req.Context()).Error("template not found", "page", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		ctxlog.FromContext(req.Context()).Error("failed to render page", "page", page, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// PageData is what every template receives.
type PageData struct {
	Title      string
	Path       string
	Session    *domain.Session
	IsAdmin    bool
	IsSeller   bool
	AdminShell bool
	Flash      *Notice
	Error      string
	Form       map[string]string
	Errors     map[string]string
	Data       interface{}
}

// HeaderName is the name shown in the header, with the admin shell default.
func (p *PageData) HeaderName() string {
	if p.Session != nil && p.Session.Name != "" {
		return p.Session.Name
	}
	if p.AdminShell || p.Session == nil {
		return "Admin User"
	}
	return p.Session.DisplayName()
}

// HeaderEmail is the email shown in the header, with the admin shell default.
func (p *PageData) HeaderEmail() string {
	if p.Session != nil && p.Session.Email != "" {
		return p.Session.Email
	}
	return "admin@example.com"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func formatUntil(t time.Time) string {
	d := time.Until(t)
	if d <= 0 {
		return "Ended"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh left", days, hours)
	}
	return fmt.Sprintf("%dh %dm left", hours, int(d.Minutes())%60)
}

func isActive(current, target string) bool {
	if target == "/" {
		return current == "/"
	}
	return current == target || strings.HasPrefix(current, target+"/")
}
