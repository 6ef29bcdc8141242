package handlers

import (
	"log"
	"net/http"
	"strings"

	"boutique_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

// List renvoie tout le catalogue, sans filtre ni pagination, dans
// l'ordre naturel de la base.
func (h *ProductHandler) List(c *gin.Context) {
	products := []models.Product{}
	if err := h.DB.Find(&products).Error; err != nil {
		log.Println("❌ Erreur lecture catalogue:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create ajoute un produit (admin). Le nom doit être non vide et le prix
// numérique ; le signe du prix n'est pas validé à ce niveau.
func (h *ProductHandler) Create(c *gin.Context) {
	var input struct {
		Name  string   `json:"name"`
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}
	if strings.TrimSpace(input.Name) == "" || input.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	product := models.Product{Name: input.Name, Price: *input.Price}
	if err := h.DB.Create(&product).Error; err != nil {
		log.Println("❌ Erreur création produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete supprime un produit par id, sans vérifier les paniers ou
// commandes qui le référencent. Les lignes de panier orphelines restent
// en base et disparaissent des lectures par la jointure interne.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.DB.Where("product_id = ?", c.Param("id")).Delete(&models.Product{}).Error; err != nil {
		log.Println("❌ Erreur suppression produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
