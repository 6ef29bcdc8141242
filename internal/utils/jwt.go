package utils

import (
	"os"
	"time"

	"boutique_back_end/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret retourne le secret de signature. Lu à chaque appel pour que
// le .env chargé au démarrage soit pris en compte.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}
