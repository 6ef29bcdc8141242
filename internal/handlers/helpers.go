package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requireSelfOrAdmin vérifie que la requête porte sur l'utilisateur
// authentifié (ou qu'un admin agit). Écrit la réponse 403 en cas de
// refus et retourne false.
func requireSelfOrAdmin(c *gin.Context, userID string) bool {
	if c.GetString("user_id") == userID {
		return true
	}
	if c.GetString("role") == "admin" {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	return false
}
