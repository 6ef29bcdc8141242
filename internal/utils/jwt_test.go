package utils

import (
	"testing"

	"boutique_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTCarriesIdentityClaims(t *testing.T) {
	user := models.User{
		ID:    "u-123",
		Email: "alice@example.com",
		Role:  "admin",
	}

	signed, err := GenerateJWT(user)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u-123", claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.NotNil(t, claims["exp"])
}
