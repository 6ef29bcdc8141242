package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hash un mot de passe avec bcrypt (coût par défaut : 10).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword vérifie qu'un mot de passe correspond au hash stocké.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
