package catalog

import (
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
)

// FixtureArtists returns the demo artists.
func FixtureArtists() []domain.Artist {
	return []domain.Artist{
		{
			ID:        "artist-1",
			Name:      "Elena Marquez",
			Specialty: "Paintings",
			Bio:       "Oil painter known for large coastal landscapes.",
			Image:     "https://images.unsplash.com/photo-1544005313-94ddf0286df2",
		},
		{
			ID:        "artist-2",
			Name:      "Kenji Watanabe",
			Specialty: "Ceramics",
			Bio:       "Studio potter working with wood-fired stoneware.",
			Image:     "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d",
		},
		{
			ID:        "artist-3",
			Name:      "Amara Okafor",
			Specialty: "Digital Art",
			Bio:       "Digital illustrator blending West African motifs with generative forms.",
			Image:     "https://images.unsplash.com/photo-1531123897727-8f129e1688ce",
		},
	}
}

// FixtureAuctions returns the demo auctions with end times relative to now.
func FixtureAuctions(now time.Time) []domain.Auction {
	day := 24 * time.Hour
	return []domain.Auction{
		{
			ID:            "1",
			Title:         "Tide at Dusk",
			ArtistID:      "artist-1",
			Image:         "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5",
			Description:   "Oil on canvas, 120 x 90 cm.",
			Category:      "Paintings",
			StartingPrice: 1200,
			CurrentBid:    1850,
			BidCount:      7,
			SellerID:      "user-seller",
			Status:        domain.AuctionStatusActive,
			EndsAt:        now.Add(3 * day),
			CreatedAt:     now.Add(-10 * day),
		},
		{
			ID:            "2",
			Title:         "Ash Glaze Vessel",
			ArtistID:      "artist-2",
			Image:         "https://images.unsplash.com/photo-1578749556568-bc2c40e68b61",
			Description:   "Wood-fired stoneware, natural ash glaze.",
			Category:      "Ceramics",
			StartingPrice: 400,
			CurrentBid:    520,
			BidCount:      3,
			SellerID:      "user-seller",
			Status:        domain.AuctionStatusActive,
			EndsAt:        now.Add(5 * day),
			CreatedAt:     now.Add(-8 * day),
		},
		{
			ID:            "3",
			Title:         "Signal Bloom",
			ArtistID:      "artist-3",
			Image:         "https://images.unsplash.com/photo-1541961017774-22349e4a1262",
			Description:   "Limited edition archival print, 1 of 10.",
			Category:      "Digital Art",
			StartingPrice: 300,
			SellerID:      "user-seller",
			Status:        domain.AuctionStatusActive,
			EndsAt:        now.Add(day),
			CreatedAt:     now.Add(-6 * day),
		},
		{
			ID:            "4",
			Title:         "Harbour Morning",
			ArtistID:      "artist-1",
			Image:         "https://images.unsplash.com/photo-1549887534-1541e9326642",
			Description:   "Oil on linen, 60 x 40 cm.",
			Category:      "Paintings",
			StartingPrice: 900,
			CurrentBid:    2100,
			BidCount:      12,
			SellerID:      "user-seller",
			Status:        domain.AuctionStatusEnded,
			EndsAt:        now.Add(-2 * day),
			CreatedAt:     now.Add(-20 * day),
		},
		{
			ID:            "5",
			Title:         "Tea Bowl Study",
			ArtistID:      "artist-2",
			Image:         "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261",
			Description:   "Set of three tea bowls, shino glaze.",
			Category:      "Ceramics",
			StartingPrice: 250,
			SellerID:      "user-seller",
			Status:        domain.AuctionStatusPending,
			EndsAt:        now.Add(7 * day),
			CreatedAt:     now.Add(-1 * day),
		},
		{
			ID:            "6",
			Title:         "Lagos Circuit",
			ArtistID:      "artist-3",
			Image:         "https://images.unsplash.com/photo-1550684848-fac1c5b4e853",
			Description:   "Generative piece, printed on aluminium.",
			Category:      "Digital Art",
			StartingPrice: 650,
			SellerID:      "user-seller",
			Status:        domain.AuctionStatusPending,
			EndsAt:        now.Add(10 * day),
			CreatedAt:     now.Add(-2 * time.Hour),
		},
	}
}
