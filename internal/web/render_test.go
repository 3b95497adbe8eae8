package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	pages := []string{
		"home", "auctions", "artwork", "artists", "artist", "about",
		"login", "signup", "forgot_password", "reset_password",
		"profile", "seller_application", "bids", "seller_dashboard",
		"admin_dashboard", "users", "items", "seller_applications", "auction_approvals",
		"not_found", "forbidden", "loading", "error",
	}
	for _, page := range pages {
		assert.True(t, r.Has(page), page)
	}
	assert.False(t, r.Has("layout"))
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing", &PageData{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPageData_Header(t *testing.T) {
	tests := []struct {
		name      string
		page      PageData
		wantName  string
		wantEmail string
	}{
		{"admin shell without session", PageData{AdminShell: true}, "Admin User", "admin@example.com"},
		{"named session", PageData{Session: &domain.Session{Name: "Jo", Email: "jo@x.test"}}, "Jo", "jo@x.test"},
		{"unnamed session in admin shell", PageData{AdminShell: true, Session: &domain.Session{Username: "root"}}, "Admin User", "admin@example.com"},
		{"unnamed session", PageData{Session: &domain.Session{Username: "root", Email: "root@x.test"}}, "root", "root@x.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.page.HeaderName())
			assert.Equal(t, tt.wantEmail, tt.page.HeaderEmail())
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, isActive("/", "/"))
	assert.False(t, isActive("/auctions", "/"))
	assert.True(t, isActive("/auctions", "/auctions"))
	assert.True(t, isActive("/users/1", "/users"))
	assert.False(t, isActive("/users-old", "/users"))
}

func TestFormatUntil(t *testing.T) {
	assert.Equal(t, "Ended", formatUntil(time.Now().Add(-time.Minute)))
	assert.Equal(t, "2d 3h left", formatUntil(time.Now().Add(51*time.Hour+30*time.Minute)))
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "Mar 4, 2025", formatDate(time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)))
}
