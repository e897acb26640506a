package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "veripay/pkg/domain-errors"
)

var tokenService = NewTokenService(
	"test-signing-key",
	"test-issuer",
	"test-audience",
)
var sellerID = uuid.New()
var expiresIn = time.Hour

func Test_GenerateSellerToken(t *testing.T) {
	token, err := tokenService.GenerateSellerToken(sellerID, "acct_1", "US", "individual", expiresIn)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sellerID.String(), claims.SellerID)
	assert.Equal(t, "acct_1", claims.AccountID)
	assert.Equal(t, "US", claims.Country)
	assert.Equal(t, "individual", claims.EntityType)
	assert.WithinDuration(t, time.Now().Add(expiresIn), claims.ExpiresAt.Time, time.Minute)
}

func Test_ValidateToken_InvalidToken(t *testing.T) {
	_, err := tokenService.ValidateToken("invalid-token-string")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_ExpiredToken(t *testing.T) {
	token, err := tokenService.GenerateSellerToken(sellerID, "acct_1", "US", "individual", -time.Hour)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(token)
	require.Error(t, err)
	assert.EqualError(t, err, "token has expired")
}

func Test_ValidateToken_WrongKey(t *testing.T) {
	other := NewTokenService("another-key", "test-issuer", "test-audience")
	token, err := other.GenerateSellerToken(sellerID, "acct_1", "US", "individual", expiresIn)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
