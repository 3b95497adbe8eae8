package identity

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
)

// DefaultCookieName is the session cookie used when none is configured.
const DefaultCookieName = "auctionhub_session"

// CookieSettings contains settings for the session cookie.
type CookieSettings struct {
	Name   string
	Domain string
	Secure bool
	MaxAge time.Duration
}

func (s CookieSettings) name() string {
	if s.Name == "" {
		return DefaultCookieName
	}
	return s.Name
}

// StoreFactory binds a Store to one request.
type StoreFactory func(w http.ResponseWriter, r *http.Request) Store

// CookieStoreFactory returns a factory producing cookie-backed stores.
func CookieStoreFactory(codec *TokenCodec, settings CookieSettings) StoreFactory {
	return func(w http.ResponseWriter, r *http.Request) Store {
		return NewCookieStore(codec, settings, w, r)
	}
}

// CookieStore persists the session in a signed cookie held by the client.
// Writes made during a request are visible to later loads of the same request.
type CookieStore struct {
	codec    *TokenCodec
	settings CookieSettings
	w        http.ResponseWriter
	r        *http.Request

	// written is set once Save or Clear ran; value then overrides the request cookie.
	written bool
	value   string
}

// NewCookieStore creates a store bound to a request/response pair.
func NewCookieStore(codec *TokenCodec, settings CookieSettings, w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{
		codec:    codec,
		settings: settings,
		w:        w,
		r:        r,
	}
}

// Load implements Store.
func (s *CookieStore) Load(ctx context.Context) (domain.Session, bool) {
	value := s.value
	if !s.written {
		cookie, err := s.r.Cookie(s.settings.name())
		if err != nil {
			return domain.Session{}, false
		}
		value = strings.TrimSpace(cookie.Value)
	}
	if value == "" {
		return domain.Session{}, false
	}

	session, err := s.codec.Decode(value)
	if err != nil {
		ctxlog.FromContext(ctx).Debug("discarding session cookie", "error", err)
		return domain.Session{}, false
	}
	return session, true
}

// Save implements Store.
func (s *CookieStore) Save(_ context.Context, session domain.Session) error {
	token, err := s.codec.Encode(session)
	if err != nil {
		return err
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     s.settings.name(),
		Value:    token,
		Path:     "/",
		Domain:   s.settings.Domain,
		MaxAge:   int(s.settings.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.settings.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	s.written = true
	s.value = token
	return nil
}

// Clear implements Store.
func (s *CookieStore) Clear(_ context.Context) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.settings.name(),
		Value:    "",
		Path:     "/",
		Domain:   s.settings.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.settings.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	s.written = true
	s.value = ""
}
