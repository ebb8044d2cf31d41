package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload carrying the identity the API stamps onto
// completed exam results.
type Claims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the bearer tokens of the HTTP surface.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the identity.
func (t *TokenIssuer) Issue(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:    u.Name,
		Email:   u.Email,
		Company: u.Company,
		Role:    string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a token and reconstructs the identity it carries.
func (t *TokenIssuer) Verify(tokenString string) (*user.User, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &user.User{
		ID:      claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Company: claims.Company,
		Role:    user.Role(claims.Role),
	}, nil
}
