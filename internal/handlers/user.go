package handlers

import (
	"log"
	"net/http"

	"boutique_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

type userSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// List renvoie nom, email et rôle de tous les utilisateurs (admin).
// Le mot de passe ne sort jamais, même hashé.
func (h *UserHandler) List(c *gin.Context) {
	users := []userSummary{}
	err := h.DB.Model(&models.User{}).
		Select("first_name, last_name, email, role").
		Scan(&users).Error
	if err != nil {
		log.Println("❌ Erreur lecture utilisateurs:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
