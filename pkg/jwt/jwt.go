package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents the claims carried by a wallet session token.
type Claims struct {
	SessionID uuid.UUID `json:"sessionId"`
	Address   string    `json:"address"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and validates wallet session tokens
type SessionTokenService struct {
	secret []byte
	expiry time.Duration
}

var signJWTToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewSessionTokenService creates a new session token service
func NewSessionTokenService(secret string, expiry time.Duration) *SessionTokenService {
	return &SessionTokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate issues a signed token binding a session id to a wallet address
func (s *SessionTokenService) Generate(sessionID uuid.UUID, address string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		Address:   address,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signJWTToken(token, s.secret)
}

// Validate validates a session token and returns the claims
func (s *SessionTokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
