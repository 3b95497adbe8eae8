package bids

import "errors"

// Bid errors.
var (
	ErrBidTooLow     = errors.New("bid must exceed the current bid")
	ErrAuctionClosed = errors.New("auction is not accepting bids")
)
