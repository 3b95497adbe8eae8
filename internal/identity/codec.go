package identity

import (
	"fmt"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "auctionhub"

// MinSecretLength is the shortest accepted signing key.
const MinSecretLength = 32

// sessionClaims carries a whole session record inside a signed token.
type sessionClaims struct {
	SessionID string      `json:"sid"`
	Username  string      `json:"username"`
	Name      string      `json:"name,omitempty"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	jwt.RegisteredClaims
}

// TokenCodec signs session records so the client can hold them
// without being able to alter them.
type TokenCodec struct {
	key []byte
}

// NewTokenCodec creates a codec using an HMAC secret.
func NewTokenCodec(secret string) (*TokenCodec, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d characters", MinSecretLength)
	}
	return &TokenCodec{key: []byte(secret)}, nil
}

// Encode serializes and signs a session.
func (c *TokenCodec) Encode(session domain.Session) (string, error) {
	claims := sessionClaims{
		SessionID: session.ID,
		Username:  session.Username,
		Name:      session.Name,
		Email:     session.Email,
		Role:      session.Role,
		CreatedAt: session.CreatedAt,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   tokenIssuer,
			Subject:  session.ID,
			IssuedAt: jwt.NewNumericDate(session.CreatedAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Decode verifies a token and rebuilds the session it carries.
// Any signature, format or completeness problem wraps ErrPersistenceCorruption.
func (c *TokenCodec) Decode(token string) (domain.Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (interface{}, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrPersistenceCorruption, err)
	}

	session := domain.Session{
		ID:        claims.SessionID,
		Username:  claims.Username,
		Name:      claims.Name,
		Email:     claims.Email,
		Role:      claims.Role,
		CreatedAt: claims.CreatedAt,
	}
	if !session.IsComplete() {
		return domain.Session{}, fmt.Errorf("%w: incomplete record", ErrPersistenceCorruption)
	}
	if claims.Subject != session.ID {
		return domain.Session{}, fmt.Errorf("%w: subject mismatch", ErrPersistenceCorruption)
	}
	return session, nil
}
