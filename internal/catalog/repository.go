package catalog

import (
	"context"

	"github.com/bissquit/auctionhub/internal/domain"
)

// Repository defines the interface for catalog data operations.
type Repository interface {
	ListAuctions(ctx context.Context, filter AuctionFilter) ([]domain.Auction, error)
	GetAuction(ctx context.Context, id string) (*domain.Auction, error)
	UpdateAuction(ctx context.Context, auction *domain.Auction) error

	ListArtists(ctx context.Context) ([]domain.Artist, error)
	GetArtist(ctx context.Context, id string) (*domain.Artist, error)
}

// AuctionFilter represents filter criteria for listing auctions.
type AuctionFilter struct {
	Status   *domain.AuctionStatus
	ArtistID string
	SellerID string
}

func (f AuctionFilter) matches(a *domain.Auction) bool {
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.ArtistID != "" && a.ArtistID != f.ArtistID {
		return false
	}
	if f.SellerID != "" && a.SellerID != f.SellerID {
		return false
	}
	return true
}
