package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
)

// Service implements catalog business logic.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the service clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AuctionView is an auction joined with its artist.
type AuctionView struct {
	domain.Auction
	ArtistName string `json:"artist_name"`
	Open       bool   `json:"open"`
}

// ArtistView is an artist with their listed auctions.
type ArtistView struct {
	domain.Artist
	Auctions []AuctionView `json:"auctions"`
}

// ListAuctions returns auctions matching filter.
func (s *Service) ListAuctions(ctx context.Context, filter AuctionFilter) ([]AuctionView, error) {
	auctions, err := s.repo.ListAuctions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return s.views(ctx, auctions)
}

// ListPublicAuctions returns auctions visible to visitors: active and ended.
func (s *Service) ListPublicAuctions(ctx context.Context) ([]AuctionView, error) {
	all, err := s.ListAuctions(ctx, AuctionFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]AuctionView, 0, len(all))
	for _, a := range all {
		if a.Status == domain.AuctionStatusActive || a.Status == domain.AuctionStatusEnded {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetAuction returns one auction.
func (s *Service) GetAuction(ctx context.Context, id string) (*AuctionView, error) {
	a, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.views(ctx, []domain.Auction{*a})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListArtists returns all artists.
func (s *Service) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.repo.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

// GetArtist returns an artist with their active and ended auctions.
func (s *Service) GetArtist(ctx context.Context, id string) (*ArtistView, error) {
	artist, err := s.repo.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	auctions, err := s.ListAuctions(ctx, AuctionFilter{ArtistID: id})
	if err != nil {
		return nil, err
	}
	visible := make([]AuctionView, 0, len(auctions))
	for _, a := range auctions {
		if a.Status == domain.AuctionStatusActive || a.Status == domain.AuctionStatusEnded {
			visible = append(visible, a)
		}
	}

	return &ArtistView{Artist: *artist, Auctions: visible}, nil
}

// Approve publishes a pending auction.
func (s *Service) Approve(ctx context.Context, id string) (*domain.Auction, error) {
	return s.transition(ctx, id, domain.AuctionStatusActive)
}

// Reject declines a pending auction.
func (s *Service) Reject(ctx context.Context, id string) (*domain.Auction, error) {
	return s.transition(ctx, id, domain.AuctionStatusRejected)
}

func (s *Service) transition(ctx context.Context, id string, next domain.AuctionStatus) (*domain.Auction, error) {
	a, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, next)
	}

	prev := a.Status
	a.Status = next
	if err := s.repo.UpdateAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("update auction: %w", err)
	}

	ctxlog.FromContext(ctx).Info("auction moderated",
		slog.String("auction_id", a.ID),
		slog.String("from", string(prev)),
		slog.String("to", string(next)),
	)
	return a, nil
}

// RecordBid raises the current bid of an auction. It implements the
// bids package's AuctionBidder.
func (s *Service) RecordBid(ctx context.Context, id string, amount int64) (*domain.Auction, error) {
	a, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return nil, err
	}
	a.CurrentBid = amount
	a.BidCount++
	if err := s.repo.UpdateAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("update auction: %w", err)
	}
	return a, nil
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) views(ctx context.Context, auctions []domain.Auction) ([]AuctionView, error) {
	names := make(map[string]string)
	now := s.now()

	out := make([]AuctionView, 0, len(auctions))
	for _, a := range auctions {
		name, ok := names[a.ArtistID]
		if !ok {
			artist, err := s.repo.GetArtist(ctx, a.ArtistID)
			if err == nil {
				name = artist.Name
			}
			names[a.ArtistID] = name
		}
		out = append(out, AuctionView{Auction: a, ArtistName: name, Open: a.IsOpen(now)})
	}
	return out, nil
}
