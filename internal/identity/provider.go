package identity

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
	"github.com/google/uuid"
)

// fallbackEmailDomain completes identifiers that are not email addresses.
const fallbackEmailDomain = "example.com"

// ProviderConfig tunes a Provider.
type ProviderConfig struct {
	// AllowFallback turns unknown non-empty credentials into a new customer
	// session instead of rejecting them.
	AllowFallback bool
	// Latency is waited before login and signup, standing in for a backend call.
	Latency time.Duration
	// Now returns the current time. Defaults to time.Now in UTC.
	Now func() time.Time
	// NewID returns a fresh local account identifier. Defaults to a short
	// base36 string derived from a random UUID.
	NewID func() string
}

// SignupInput contains data for creating an account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Name     string
}

// Provider is the single authority on who is logged in for one client.
// It owns the client's Store and is the only code that mutates it.
type Provider struct {
	store Store
	auth  Authenticator
	cfg   ProviderConfig

	mu      sync.RWMutex
	state   State
	session *domain.Session
}

// NewProvider creates a provider in the initializing state.
func NewProvider(store Store, auth Authenticator, cfg ProviderConfig) *Provider {
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if cfg.NewID == nil {
		cfg.NewID = newLocalID
	}
	return &Provider{
		store: store,
		auth:  auth,
		cfg:   cfg,
		state: StateInitializing,
	}
}

// Init loads the persisted session. Calling it again has no effect.
func (p *Provider) Init(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateInitializing {
		return
	}

	if session, ok := p.store.Load(ctx); ok {
		p.session = &session
		p.state = StateAuthenticated
		return
	}
	p.state = StateUnauthenticated
}

// Ready reports whether the initial load has completed.
func (p *Provider) Ready() bool {
	return p.State() != StateInitializing
}

// State returns the current lifecycle state.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Current returns the active session, if any.
func (p *Provider) Current() (domain.Session, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return domain.Session{}, false
	}
	return *p.session, true
}

// IsAdmin reports whether the current session has the admin role.
func (p *Provider) IsAdmin() bool {
	s, ok := p.Current()
	return ok && s.Role == domain.RoleAdmin
}

// IsSeller reports whether the current session may act as a seller.
// Admins have every seller capability.
func (p *Provider) IsSeller() bool {
	s, ok := p.Current()
	return ok && (s.Role == domain.RoleSeller || s.Role == domain.RoleAdmin)
}

// Login authenticates identifier (username or email) and secret.
//
// Allow-listed accounts get their configured role. When the authenticator
// rejects non-empty credentials and fallback is enabled, a customer session
// is created instead. The session is persisted before Login returns.
func (p *Provider) Login(ctx context.Context, identifier, secret string) (domain.Session, error) {
	if err := p.checkCanAuthenticate(); err != nil {
		recordAttempt("login", outcomeFor(err))
		return domain.Session{}, err
	}
	if identifier == "" || secret == "" {
		recordAttempt("login", outcomeFor(ErrValidation))
		return domain.Session{}, ErrValidation
	}

	if err := p.wait(ctx); err != nil {
		recordAttempt("login", outcomeFor(err))
		return domain.Session{}, err
	}

	var session domain.Session
	ident, err := p.auth.Authenticate(ctx, identifier, secret)
	switch {
	case err == nil:
		session = domain.Session{
			ID:       "user-" + ident.Username,
			Username: ident.Username,
			Name:     ident.Name,
			Email:    ident.Email,
			Role:     ident.Role,
		}
	case errors.Is(err, ErrAuthenticationRejected) && p.cfg.AllowFallback:
		username, email := fallbackHandle(identifier)
		session = domain.Session{
			ID:       "user-" + p.cfg.NewID(),
			Username: username,
			Email:    email,
			Role:     domain.RoleCustomer,
		}
	case errors.Is(err, ErrAuthenticationRejected):
		recordAttempt("login", outcomeFor(err))
		return domain.Session{}, err
	default:
		recordAttempt("login", "error")
		return domain.Session{}, fmt.Errorf("authenticate: %w", err)
	}
	session.CreatedAt = p.cfg.Now()

	if err := p.commit(ctx, session); err != nil {
		recordAttempt("login", outcomeFor(err))
		return domain.Session{}, err
	}

	recordAttempt("login", "success")
	ctxlog.FromContext(ctx).Info("session created",
		"user_id", session.ID,
		"role", session.Role,
		"operation", "login",
	)
	return session, nil
}

// Signup creates a customer session for a new account. There is no
// account backend, so usernames and emails are not checked for uniqueness.
func (p *Provider) Signup(ctx context.Context, input SignupInput) (domain.Session, error) {
	if err := p.checkCanAuthenticate(); err != nil {
		recordAttempt("signup", outcomeFor(err))
		return domain.Session{}, err
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		recordAttempt("signup", outcomeFor(ErrValidation))
		return domain.Session{}, ErrValidation
	}

	if err := p.wait(ctx); err != nil {
		recordAttempt("signup", outcomeFor(err))
		return domain.Session{}, err
	}

	session := domain.Session{
		ID:        "user-" + p.cfg.NewID(),
		Username:  input.Username,
		Name:      input.Name,
		Email:     input.Email,
		Role:      domain.RoleCustomer,
		CreatedAt: p.cfg.Now(),
	}

	if err := p.commit(ctx, session); err != nil {
		recordAttempt("signup", outcomeFor(err))
		return domain.Session{}, err
	}

	recordAttempt("signup", "success")
	ctxlog.FromContext(ctx).Info("session created",
		"user_id", session.ID,
		"role", session.Role,
		"operation", "signup",
	)
	return session, nil
}

// Logout drops the session from memory and from the store.
// Logging out without a session only clears the store again.
func (p *Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateInitializing {
		return ErrNotReady
	}

	p.store.Clear(ctx)
	if p.session != nil {
		ctxlog.FromContext(ctx).Info("session destroyed", "user_id", p.session.ID)
	}
	p.session = nil
	p.state = StateUnauthenticated
	return nil
}

func (p *Provider) checkCanAuthenticate() error {
	switch p.State() {
	case StateInitializing:
		return ErrNotReady
	case StateAuthenticated:
		return ErrSessionActive
	}
	return nil
}

// commit persists session and only then makes it visible.
func (p *Provider) commit(ctx context.Context, session domain.Session) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateUnauthenticated {
		return ErrSessionActive
	}

	if err := p.store.Save(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	p.session = &session
	p.state = StateAuthenticated
	return nil
}

func (p *Provider) wait(ctx context.Context) error {
	if p.cfg.Latency <= 0 {
		return nil
	}

	timer := time.NewTimer(p.cfg.Latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fallbackHandle derives a username and email from a free-form identifier.
func fallbackHandle(identifier string) (username, email string) {
	if local, _, found := strings.Cut(identifier, "@"); found {
		if local == "" {
			local = identifier
		}
		return local, identifier
	}
	return identifier, identifier + "@" + fallbackEmailDomain
}

// newLocalID returns seven lowercase base36 characters.
func newLocalID() string {
	u := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(s) < 7 {
		s = strings.Repeat("0", 7-len(s)) + s
	}
	return s[len(s)-7:]
}
