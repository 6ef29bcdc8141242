package handlers

import (
	"errors"
	"log"
	"net/http"

	"boutique_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartHandler struct {
	DB *gorm.DB
}

// Add insère toujours une nouvelle ligne : ajouter deux fois le même
// produit donne deux lignes distinctes, pas une ligne à quantité
// cumulée. Comportement d'origine, conservé tel quel.
func (h *CartHandler) Add(c *gin.Context) {
	var input struct {
		UserID    string `json:"user_id"`
		ProductID uint   `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}
	if !requireSelfOrAdmin(c, input.UserID) {
		return
	}

	item := models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		log.Println("❌ Erreur ajout au panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Get renvoie les lignes du panier jointes au produit. La jointure
// interne exclut les lignes dont le produit a été supprimé.
func (h *CartHandler) Get(c *gin.Context) {
	userID := c.Param("user_id")
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	lines := []models.CartLine{}
	err := h.DB.Table("cart").
		Select("cart.cart_id, product.product_id, product.name, product.price, cart.quantity").
		Joins("JOIN product ON product.product_id = cart.product_id").
		Where("cart.user_id = ?", userID).
		Scan(&lines).Error
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart fetch error"})
		return
	}

	c.JSON(http.StatusOK, lines)
}

// Remove supprime une ligne de panier. La ligne doit appartenir à
// l'utilisateur authentifié (un admin peut tout supprimer).
func (h *CartHandler) Remove(c *gin.Context) {
	item, ok := h.ownedItem(c)
	if !ok {
		return
	}

	if err := h.DB.Delete(&item).Error; err != nil {
		log.Println("❌ Erreur suppression ligne panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Update change la quantité d'une ligne. Une quantité ≤ 0 supprime la
// ligne au lieu de la mettre à jour — l'invariant quantity ≥ 1 tient
// tant que la ligne existe.
func (h *CartHandler) Update(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	item, ok := h.ownedItem(c)
	if !ok {
		return
	}

	if input.Quantity <= 0 {
		if err := h.DB.Delete(&item).Error; err != nil {
			log.Println("❌ Erreur suppression ligne panier:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed due to zero quantity"})
		return
	}

	if err := h.DB.Model(&item).Update("quantity", input.Quantity).Error; err != nil {
		log.Println("❌ Erreur mise à jour quantité:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ownedItem charge la ligne :cart_id et vérifie qu'elle appartient à
// l'utilisateur authentifié. Écrit la réponse d'erreur en cas d'échec.
func (h *CartHandler) ownedItem(c *gin.Context) (models.CartItem, bool) {
	var item models.CartItem
	err := h.DB.Where("cart_id = ?", c.Param("cart_id")).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return item, false
	}
	if err != nil {
		log.Println("❌ Erreur lecture ligne panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return item, false
	}
	if !requireSelfOrAdmin(c, item.UserID) {
		return item, false
	}
	return item, true
}
