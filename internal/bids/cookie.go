package bids

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bissquit/auctionhub/internal/domain"
)

// CookieName holds the client's own bids.
const CookieName = "auctionhub_bids"

// MaxStored bounds the bids kept in the cookie, newest first.
const MaxStored = 10

// Read returns the bids stored in the request cookie. A missing or
// undecodable cookie yields an empty list.
func Read(r *http.Request) []domain.Bid {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return []domain.Bid{}
	}
	return decode(cookie.Value)
}

// Write stores bids in the response cookie.
func Write(w http.ResponseWriter, bids []domain.Bid, secure bool) error {
	if len(bids) > MaxStored {
		bids = bids[:MaxStored]
	}
	payload, err := json.Marshal(bids)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func decode(raw string) []domain.Bid {
	value := strings.TrimSpace(raw)
	if value == "" {
		return []domain.Bid{}
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return []domain.Bid{}
	}
	var bids []domain.Bid
	if err := json.Unmarshal(decoded, &bids); err != nil || bids == nil {
		return []domain.Bid{}
	}
	return bids
}
