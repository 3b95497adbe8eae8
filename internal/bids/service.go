// Package bids places bids on catalog auctions and tracks the client's own bids.
package bids

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bissquit/auctionhub/internal/catalog"
	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
)

// AuctionBidder reads auctions and records accepted bids.
type AuctionBidder interface {
	GetAuction(ctx context.Context, id string) (*catalog.AuctionView, error)
	RecordBid(ctx context.Context, id string, amount int64) (*domain.Auction, error)
	Now() time.Time
}

// Service implements bidding.
type Service struct {
	auctions AuctionBidder
	mu       sync.Mutex
}

// NewService creates a new bid service.
func NewService(auctions AuctionBidder) *Service {
	return &Service{auctions: auctions}
}

// PlaceBidInput holds data for placing a bid.
type PlaceBidInput struct {
	AuctionID string
	Amount    int64
	Bidder    string
}

// PlaceBid validates and records a bid, then returns the client's bid list
// with the new bid first and earlier bids on the same auction marked outbid.
func (s *Service) PlaceBid(ctx context.Context, input PlaceBidInput, existing []domain.Bid) (domain.Bid, []domain.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, err := s.auctions.GetAuction(ctx, input.AuctionID)
	if err != nil {
		return domain.Bid{}, existing, err
	}
	now := s.auctions.Now()
	if !auction.IsOpen(now) {
		return domain.Bid{}, existing, ErrAuctionClosed
	}
	if input.Amount <= auction.MinimumBid() {
		return domain.Bid{}, existing, fmt.Errorf("%w of %d", ErrBidTooLow, auction.MinimumBid())
	}

	if _, err := s.auctions.RecordBid(ctx, auction.ID, input.Amount); err != nil {
		return domain.Bid{}, existing, fmt.Errorf("record bid: %w", err)
	}

	bid := domain.Bid{
		AuctionID: auction.ID,
		Title:     auction.Title,
		Image:     auction.Image,
		Bidder:    input.Bidder,
		Artist:    auction.ArtistName,
		Amount:    input.Amount,
		Status:    domain.BidStatusLeading,
		PlacedAt:  now,
	}

	out := make([]domain.Bid, 0, len(existing)+1)
	out = append(out, bid)
	for _, b := range existing {
		if b.AuctionID == bid.AuctionID {
			b.Status = domain.BidStatusOutbid
		}
		out = append(out, b)
	}
	if len(out) > MaxStored {
		out = out[:MaxStored]
	}

	ctxlog.FromContext(ctx).Info("bid placed",
		"auction_id", bid.AuctionID,
		"amount", bid.Amount,
	)
	return bid, out, nil
}

// Refresh recomputes each bid's status from the current auction state.
// Bids on auctions that no longer exist keep their stored status.
func (s *Service) Refresh(ctx context.Context, bids []domain.Bid) []domain.Bid {
	now := s.auctions.Now()
	out := make([]domain.Bid, 0, len(bids))
	for _, b := range bids {
		auction, err := s.auctions.GetAuction(ctx, b.AuctionID)
		if err == nil {
			b.Status = statusFor(b, auction, now)
		}
		out = append(out, b)
	}
	return out
}

func statusFor(b domain.Bid, auction *catalog.AuctionView, now time.Time) domain.BidStatus {
	switch {
	case auction.CurrentBid > b.Amount:
		return domain.BidStatusOutbid
	case auction.Status == domain.AuctionStatusEnded || (auction.Status == domain.AuctionStatusActive && !auction.IsOpen(now)):
		return domain.BidStatusWon
	default:
		return domain.BidStatusLeading
	}
}
