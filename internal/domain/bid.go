package domain

import "time"

// BidStatus represents the standing of a bid.
type BidStatus string

// Bid statuses.
const (
	BidStatusLeading BidStatus = "Leading"
	BidStatusOutbid  BidStatus = "Outbid"
	BidStatusWon     BidStatus = "Won"
)

// Bid is a single bid placed by the current client.
type Bid struct {
	AuctionID string    `json:"auction_id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Bidder    string    `json:"bidder"`
	Artist    string    `json:"artists,omitempty"`
	Amount    int64     `json:"bid_amount"`
	Status    BidStatus `json:"status"`
	PlacedAt  time.Time `json:"placed_at"`
}

// ArtistOrUnknown returns the artist name or "Unknown" when absent.
func (b Bid) ArtistOrUnknown() string {
	if b.Artist == "" {
		return "Unknown"
	}
	return b.Artist
}
