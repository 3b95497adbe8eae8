package web

import (
	"errors"
	"net/http"

	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/go-chi/chi/v5"
)

// featuredCount is how many open auctions the home page shows.
const featuredCount = 3

type homeView struct {
	Featured []catalog.AuctionView
	Artists  []domain.Artist
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.cfg.Catalog.ListAuctions(r.Context(), catalog.AuctionFilter{Status: statusPtr(domain.AuctionStatusActive)})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	artists, err := h.cfg.Catalog.ListArtists(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if len(auctions) > featuredCount {
		auctions = auctions[:featuredCount]
	}

	page := h.newPage(w, r, "AuctionHub")
	page.Data = homeView{Featured: auctions, Artists: artists}
	h.render(w, r, http.StatusOK, "home", page)
}

// Auctions handles GET /auctions.
func (h *Handler) Auctions(w http.ResponseWriter, r *http.Request) {
	auctions, err := h.cfg.Catalog.ListPublicAuctions(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.newPage(w, r, "Auctions")
	page.Data = auctions
	h.render(w, r, http.StatusOK, "auctions", page)
}

type artworkView struct {
	Auction    *catalog.AuctionView
	MinimumBid int64
}

// Artwork handles GET /artwork/{id}.
func (h *Handler) Artwork(w http.ResponseWriter, r *http.Request) {
	page, status, ok := h.artworkPage(w, r)
	if !ok {
		return
	}
	h.render(w, r, status, "artwork", page)
}

// artworkPage loads the auction named in the URL. Pending and rejected
// auctions are not public and answer 404.
func (h *Handler) artworkPage(w http.ResponseWriter, r *http.Request) (*PageData, int, bool) {
	auction, err := h.cfg.Catalog.GetAuction(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrAuctionNotFound) || (err == nil && !isPublic(auction.Status)) {
		h.NotFound(w, r)
		return nil, 0, false
	}
	if err != nil {
		h.serverError(w, r, err)
		return nil, 0, false
	}

	page := h.newPage(w, r, auction.Title)
	page.Data = artworkView{Auction: auction, MinimumBid: auction.MinimumBid()}
	return page, http.StatusOK, true
}

// Artists handles GET /artists.
func (h *Handler) Artists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.cfg.Catalog.ListArtists(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.newPage(w, r, "Artists")
	page.Data = artists
	h.render(w, r, http.StatusOK, "artists", page)
}

// Artist handles GET /artist/{id}.
func (h *Handler) Artist(w http.ResponseWriter, r *http.Request) {
	artist, err := h.cfg.Catalog.GetArtist(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrArtistNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.newPage(w, r, artist.Name)
	page.Data = artist
	h.render(w, r, http.StatusOK, "artist", page)
}

// About handles GET /about.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", h.newPage(w, r, "About"))
}

func isPublic(s domain.AuctionStatus) bool {
	return s == domain.AuctionStatusActive || s == domain.AuctionStatusEnded
}

func statusPtr(s domain.AuctionStatus) *domain.AuctionStatus {
	return &s
}
