//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"flashsale-scheduler/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	token, err := svc.GenerateToken("seller", true)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "seller", claims.UserName)
	assert.True(t, claims.Marketplace)
}

func TestService_Rejects(t *testing.T) {
	token, err := jwt.NewService("secret", time.Hour).GenerateToken("seller", false)
	require.NoError(t, err)

	_, err = jwt.NewService("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	expired, err := jwt.NewService("secret", -time.Minute).GenerateToken("seller", false)
	require.NoError(t, err)
	_, err = jwt.NewService("secret", time.Hour).ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}
