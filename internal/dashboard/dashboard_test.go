package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AdminCards(t *testing.T) {
	admin := NewService(Fixtures{}).Admin()

	require.Len(t, admin.Cards, 3)

	sales := admin.Cards[0]
	assert.Equal(t, "Weekly Sales", sales.Title)
	assert.Equal(t, "$1,234,567", sales.Value)
	assert.Equal(t, "12.5%", sales.Delta)
	assert.Equal(t, "Increased", sales.Trend)
	assert.True(t, sales.Positive)

	orders := admin.Cards[1]
	assert.Equal(t, "Weekly Orders", orders.Title)
	assert.Equal(t, "8,452", orders.Value)
	assert.Equal(t, "3.2%", orders.Delta)
	assert.Equal(t, "Decreased", orders.Trend)
	assert.False(t, orders.Positive)

	assert.Equal(t, "Visitors Online", admin.Cards[2].Title)
	assert.Equal(t, "2,841", admin.Cards[2].Value)

	assert.Len(t, admin.Activity, 8)
	require.Len(t, admin.RecentUsers, 3)
	assert.Equal(t, "Jane Smith", admin.RecentUsers[0].Name)
	assert.Equal(t, "Seller", admin.RecentUsers[0].Badge)
	assert.Equal(t, "Pending", admin.RecentUsers[1].Badge)
	assert.Equal(t, "Buyer", admin.RecentUsers[2].Badge)
}

func TestNewStatCard_ZeroIsIncrease(t *testing.T) {
	card := NewStatCard("Flat", "0", 0, "")
	assert.Equal(t, "Increased", card.Trend)
	assert.Equal(t, "0%", card.Delta)
}

func TestService_Seller(t *testing.T) {
	seller := NewService(Fixtures{}).Seller()

	assert.Equal(t, 12, seller.Stats.TotalItems)
	assert.Equal(t, 5, seller.Stats.ActiveAuctions)
	assert.Equal(t, 45, seller.Stats.TotalBidders)

	values := make(map[string]string)
	for _, c := range seller.Cards {
		values[c.Title] = c.Value
	}
	assert.Equal(t, map[string]string{
		"Total Items":     "12",
		"Active Auctions": "5",
		"Total Sales":     "$25,000",
		"Total Bidders":   "45",
	}, values)
}

func TestHandler(t *testing.T) {
	h := NewHandler(NewService(Fixtures{}))
	r := chi.NewRouter()
	h.RegisterAdminRoutes(r)
	h.RegisterSellerRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Data, "cards")
	assert.Contains(t, body.Data, "traffic_sources")
	assert.NotContains(t, body.Data, "ActivityChart")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seller/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_sales":25000`)
}
