package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saiisback/capy/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func TestSessionTokenService_RoundTrip(t *testing.T) {
	svc := jwt.NewSessionTokenService("test-secret", time.Hour)

	sessionID := uuid.New()
	address := "0xfbba985a2c29ca23955c442823fe849778ddd17cd1d55c57c2a3b91de7943fe4"

	token, err := svc.Generate(sessionID, address)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, address, claims.Address)
}

func TestSessionTokenService_Expired(t *testing.T) {
	svc := jwt.NewSessionTokenService("test-secret", -time.Minute)

	token, err := svc.Generate(uuid.New(), "0xabc")
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestSessionTokenService_WrongSecret(t *testing.T) {
	svc := jwt.NewSessionTokenService("secret-a", time.Hour)
	other := jwt.NewSessionTokenService("secret-b", time.Hour)

	token, err := svc.Generate(uuid.New(), "0xabc")
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestSessionTokenService_Garbage(t *testing.T) {
	svc := jwt.NewSessionTokenService("test-secret", time.Hour)
	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
