package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/bissquit/auctionhub/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Identity is what an authentication backend knows about an account.
type Identity struct {
	Username string
	Email    string
	Name     string
	Role     domain.Role
}

// Authenticator verifies credentials against an identity backend.
// Implementations return ErrAuthenticationRejected for unknown accounts or
// wrong secrets; any other error means the backend could not answer.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, secret string) (*Identity, error)
}

// Account is one allow-listed login. Either Password or PasswordHash
// (bcrypt) must be set.
type Account struct {
	Username     string
	Email        string
	Name         string
	Role         domain.Role
	Password     string
	PasswordHash string
}

type allowListEntry struct {
	identity Identity
	hash     []byte
}

// AllowList authenticates against a fixed set of accounts.
type AllowList struct {
	entries []allowListEntry
}

// NewAllowList hashes plain passwords with the given bcrypt cost and
// returns the allow-list. A cost of 0 uses bcrypt.DefaultCost.
func NewAllowList(accounts []Account, cost int) (*AllowList, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	entries := make([]allowListEntry, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Username == "" || acc.Email == "" {
			return nil, errors.New("account requires username and email")
		}
		if !acc.Role.IsValid() {
			return nil, fmt.Errorf("account %s: invalid role %q", acc.Username, acc.Role)
		}

		hash := []byte(acc.PasswordHash)
		if len(hash) == 0 {
			if acc.Password == "" {
				return nil, fmt.Errorf("account %s: password or password hash required", acc.Username)
			}
			var err error
			hash, err = bcrypt.GenerateFromPassword([]byte(acc.Password), cost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %s: %w", acc.Username, err)
			}
		}

		entries = append(entries, allowListEntry{
			identity: Identity{
				Username: acc.Username,
				Email:    acc.Email,
				Name:     acc.Name,
				Role:     acc.Role,
			},
			hash: hash,
		})
	}

	return &AllowList{entries: entries}, nil
}

// Authenticate implements Authenticator. The identifier matches either the
// username or the email of an account.
func (a *AllowList) Authenticate(_ context.Context, identifier, secret string) (*Identity, error) {
	for _, e := range a.entries {
		if e.identity.Username != identifier && e.identity.Email != identifier {
			continue
		}
		if bcrypt.CompareHashAndPassword(e.hash, []byte(secret)) == nil {
			ident := e.identity
			return &ident, nil
		}
	}
	return nil, ErrAuthenticationRejected
}

// Identities returns the allow-listed accounts without their secrets.
func (a *AllowList) Identities() []Identity {
	out := make([]Identity, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.identity)
	}
	return out
}
