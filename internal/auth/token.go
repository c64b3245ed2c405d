package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenTTL is the lifetime of an issued bearer token.
	TokenTTL = time.Hour

	bearerScheme = "bearer "
)

var (
	ErrMissingSecret = errors.New("token signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
)

// Identity is a verified user identity carried by a bearer token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   string `json:"id"`
}

// TokenAuthority signs and verifies bearer tokens with a single
// process-wide secret.
type TokenAuthority struct {
	secret []byte
}

func NewTokenAuthority(secret string) (*TokenAuthority, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return &TokenAuthority{secret: []byte(secret)}, nil
}

// Issue signs a token carrying the identity's username and user id. The
// token expires exactly TokenTTL after issuance.
func (a *TokenAuthority) Issue(identity Identity) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Username: identity.Username,
		UserID:   identity.UserID.String(),
	})

	return token.SignedString(a.secret)
}

// Verify parses the token string, checks the signature and expiry, and
// returns the embedded identity. Expired tokens and malformed or forged
// tokens yield distinct error kinds so the boundary can log them apart.
func (a *TokenAuthority) Verify(tokenString string) (*Identity, error) {
	var c claims

	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		default:
			return nil, ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: userID, Username: c.Username}, nil
}

// ExtractBearer returns the token portion of an Authorization header value.
// The scheme prefix is matched case-insensitively. A missing header or a
// non-bearer scheme reports absence, not an error.
func ExtractBearer(headerValue string) (string, bool) {
	if len(headerValue) <= len(bearerScheme) {
		return "", false
	}

	if !strings.EqualFold(headerValue[:len(bearerScheme)], bearerScheme) {
		return "", false
	}

	return headerValue[len(bearerScheme):], true
}
