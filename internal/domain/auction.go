package domain

import "time"

// AuctionStatus represents the moderation and bidding state of an auction.
type AuctionStatus string

// Auction statuses.
const (
	AuctionStatusPending  AuctionStatus = "pending"
	AuctionStatusActive   AuctionStatus = "active"
	AuctionStatusRejected AuctionStatus = "rejected"
	AuctionStatusEnded    AuctionStatus = "ended"
)

// IsValid checks if the auction status is valid.
func (s AuctionStatus) IsValid() bool {
	switch s {
	case AuctionStatusPending, AuctionStatusActive,
		AuctionStatusRejected, AuctionStatusEnded:
		return true
	}
	return false
}

// CanTransitionTo reports whether moderation may move an auction from s to next.
// Only pending auctions are reviewed; ended and rejected are terminal.
func (s AuctionStatus) CanTransitionTo(next AuctionStatus) bool {
	switch s {
	case AuctionStatusPending:
		return next == AuctionStatusActive || next == AuctionStatusRejected
	case AuctionStatusActive:
		return next == AuctionStatusEnded
	}
	return false
}

// Auction is an artwork listed for bidding.
type Auction struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	ArtistID      string        `json:"artist_id"`
	Image         string        `json:"image"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	StartingPrice int64         `json:"starting_price"`
	CurrentBid    int64         `json:"current_bid"`
	BidCount      int           `json:"bid_count"`
	SellerID      string        `json:"seller_id"`
	Status        AuctionStatus `json:"status"`
	EndsAt        time.Time     `json:"ends_at"`
	CreatedAt     time.Time     `json:"created_at"`
}

// IsOpen reports whether the auction accepts bids at now.
func (a *Auction) IsOpen(now time.Time) bool {
	return a.Status == AuctionStatusActive && now.Before(a.EndsAt)
}

// MinimumBid returns the smallest amount a new bid must exceed.
func (a *Auction) MinimumBid() int64 {
	if a.CurrentBid > a.StartingPrice {
		return a.CurrentBid
	}
	return a.StartingPrice
}

// Artist is a creator whose works are auctioned.
type Artist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
}
