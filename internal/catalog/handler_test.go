package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	h := NewHandler(newTestService())
	r := chi.NewRouter()
	h.RegisterPublicRoutes(r)
	h.RegisterAdminRoutes(r)
	return r
}

func serve(t *testing.T, h http.Handler, method, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandler_ListAuctions(t *testing.T) {
	r := newTestRouter()

	rec, body := serve(t, r, http.MethodGet, "/auctions")
	require.Equal(t, http.StatusOK, rec.Code)
	var auctions []AuctionView
	require.NoError(t, json.Unmarshal(body["data"], &auctions))
	assert.Len(t, auctions, 4)

	rec, body = serve(t, r, http.MethodGet, "/auctions?status=ended")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(body["data"], &auctions))
	require.Len(t, auctions, 1)
	assert.Equal(t, "4", auctions[0].ID)
}

func TestHandler_GetAuction(t *testing.T) {
	r := newTestRouter()

	rec, _ := serve(t, r, http.MethodGet, "/auctions/1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, r, http.MethodGet, "/auctions/5")
	assert.Equal(t, http.StatusNotFound, rec.Code, "pending auctions are hidden")

	rec, body := serve(t, r, http.MethodGet, "/auctions/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, string(body["error"]), "auction not found")
}

func TestHandler_Moderation(t *testing.T) {
	r := newTestRouter()

	rec, _ := serve(t, r, http.MethodPost, "/admin/auctions/5/approve")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, r, http.MethodGet, "/auctions/5")
	assert.Equal(t, http.StatusOK, rec.Code, "approved auction is public")

	rec, _ = serve(t, r, http.MethodPost, "/admin/auctions/5/reject")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = serve(t, r, http.MethodGet, "/admin/auctions?status=bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Artists(t *testing.T) {
	r := newTestRouter()

	rec, _ := serve(t, r, http.MethodGet, "/artists")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, r, http.MethodGet, "/artists/artist-1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, r, http.MethodGet, "/artists/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
