package handlers

import (
	"log"
	"net/http"

	"boutique_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	DB *gorm.DB
}

// Create insère un avis tel quel : ni la note ni le sentiment ne sont
// validés à ce niveau. Aucun endpoint ne relit les avis.
func (h *ReviewHandler) Create(c *gin.Context) {
	var input struct {
		UserID    string `json:"user_id"`
		ProductID uint   `json:"product_id"`
		Rating    int    `json:"rating"`
		Sentiment string `json:"sentiment"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !requireSelfOrAdmin(c, input.UserID) {
		return
	}

	review := models.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Sentiment: input.Sentiment,
		Comment:   input.Comment,
	}
	if err := h.DB.Create(&review).Error; err != nil {
		log.Println("❌ Erreur création avis:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review added successfully!"})
}
