package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/bissquit/auctionhub/internal/domain"
)

// MemoryRepository keeps the catalog in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	auctions map[string]domain.Auction
	artists  map[string]domain.Artist
}

// NewMemoryRepository creates a repository seeded with the given records.
func NewMemoryRepository(auctions []domain.Auction, artists []domain.Artist) *MemoryRepository {
	repo := &MemoryRepository{
		auctions: make(map[string]domain.Auction, len(auctions)),
		artists:  make(map[string]domain.Artist, len(artists)),
	}
	for _, a := range auctions {
		repo.auctions[a.ID] = a
	}
	for _, a := range artists {
		repo.artists[a.ID] = a
	}
	return repo
}

// ListAuctions returns auctions matching filter, newest first.
func (r *MemoryRepository) ListAuctions(_ context.Context, filter AuctionFilter) ([]domain.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		if filter.matches(&a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetAuction returns a copy of the auction with id.
func (r *MemoryRepository) GetAuction(_ context.Context, id string) (*domain.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[id]
	if !ok {
		return nil, ErrAuctionNotFound
	}
	return &a, nil
}

// UpdateAuction replaces a stored auction.
func (r *MemoryRepository) UpdateAuction(_ context.Context, auction *domain.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.ID]; !ok {
		return ErrAuctionNotFound
	}
	r.auctions[auction.ID] = *auction
	return nil
}

// ListArtists returns all artists ordered by name.
func (r *MemoryRepository) ListArtists(_ context.Context) ([]domain.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetArtist returns a copy of the artist with id.
func (r *MemoryRepository) GetArtist(_ context.Context, id string) (*domain.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.artists[id]
	if !ok {
		return nil, ErrArtistNotFound
	}
	return &a, nil
}
