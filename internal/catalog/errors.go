package catalog

import "errors"

// Catalog errors.
var (
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrArtistNotFound    = errors.New("artist not found")
	ErrInvalidTransition = errors.New("invalid auction status transition")
)
