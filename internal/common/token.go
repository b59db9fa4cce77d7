package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pronet/internal/apperror"
)

// Claims represents the data stored in the session token.
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. The secret and TTL
// are fixed at construction; verification is a pure function of the token,
// the secret and the clock, so there is no logout/revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a token bound to userID, expiring ttl from now.
func (s *TokenService) Issue(userID uint64) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pronet",
			Subject:   "user-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the user id the token was issued for. Expired tokens yield
// apperror.ErrTokenExpired, everything else malformed yields ErrTokenInvalid.
func (s *TokenService) Verify(tokenstring string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenstring, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperror.New(apperror.ErrTokenExpired, "token has expired")
		}
		return 0, apperror.New(apperror.ErrTokenInvalid, "invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, apperror.New(apperror.ErrTokenInvalid, "invalid token")
	}
	return claims.UserID, nil
}
