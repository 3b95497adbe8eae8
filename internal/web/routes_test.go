package web

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccess_Role(t *testing.T) {
	assert.Equal(t, domain.Role(""), AccessPublic.Role())
	assert.Equal(t, domain.RoleCustomer, AccessCustomer.Role())
	assert.Equal(t, domain.RoleSeller, AccessSeller.Role())
	assert.Equal(t, domain.RoleAdmin, AccessAdmin.Role())
}

func TestRoutes_Table(t *testing.T) {
	h, err := NewHandler(Config{})
	require.NoError(t, err)

	access := map[string]Access{}
	for _, r := range h.Routes() {
		require.NotNil(t, r.Handler, r.Path)
		key := r.Method + " " + r.Path
		_, dup := access[key]
		require.False(t, dup, "duplicate route %s", key)
		access[key] = r.Access
	}

	tests := map[string]Access{
		"GET /":                    AccessPublic,
		"GET /artwork/{id}":        AccessPublic,
		"POST /logout":             AccessPublic,
		"GET /profile":             AccessCustomer,
		"POST /artwork/{id}/bid":   AccessCustomer,
		"GET /seller/dashboard":    AccessSeller,
		"GET /admindashboard":      AccessAdmin,
		"GET /auction-approvals":   AccessAdmin,
		"GET /seller-applications": AccessAdmin,
	}
	for key, want := range tests {
		assert.Equal(t, want, access[key], key)
	}

	for key, a := range access {
		path := strings.SplitN(key, " ", 2)[1]
		if path == "/users" || path == "/items" || strings.HasPrefix(path, "/auction-approvals") || strings.HasPrefix(path, "/seller-applications") {
			assert.Equal(t, AccessAdmin, a, key)
		}
	}
	assert.Contains(t, access, http.MethodPost+" /seller-applications/{id}/{decision}")
}
