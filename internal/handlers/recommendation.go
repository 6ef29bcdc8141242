package handlers

import (
	"log"
	"net/http"

	"boutique_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecommendationHandler struct {
	DB *gorm.DB
}

// List renvoie les produits recommandés pour un utilisateur. Sans
// recommandation, la réponse est une liste vide, pas une erreur.
func (h *RecommendationHandler) List(c *gin.Context) {
	userID := c.Param("user_id")
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	products := []models.Product{}
	err := h.DB.Table("recommendation").
		Select("product.product_id, product.name, product.price").
		Joins("JOIN product ON product.product_id = recommendation.product_id").
		Where("recommendation.user_id = ?", userID).
		Scan(&products).Error
	if err != nil {
		log.Println("❌ Erreur lecture recommandations:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}

	c.JSON(http.StatusOK, products)
}
