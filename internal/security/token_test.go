package security_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalcar-backend/internal/security"
)

const testSecret = "test-secret-test-secret-test-secret!"

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)
	customerID := uuid.New()

	token, err := manager.GenerateAccessToken(customerID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, customerID, claims.CustomerID)
	assert.Equal(t, "alice", claims.UserID)
	assert.Equal(t, security.TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenRoundTrip(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)
	customerID := uuid.New()

	token, err := manager.GenerateRefreshToken(customerID, "alice")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, security.TokenTypeRefresh, claims.Type)
}

func TestTokenManager_WrongTokenType(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	refresh, err := manager.GenerateRefreshToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, security.ErrWrongTokenType)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, -time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_TamperedToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)
	other := security.NewTokenManager("another-secret-another-secret-yes!!!", time.Hour, 7*24*time.Hour)

	token, err := other.GenerateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_GarbageInput(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	_, err := manager.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
