package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"boutique_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsIsPublic(t *testing.T) {
	r, db := newTestAPI(t)
	require.NoError(t, db.Create(&models.Product{Name: "Lampe", Price: 35.00}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Lampe", products[0].Name)
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := newTestAPI(t)
	_, adminToken := registerAndLogin(t, r, "admin@example.com", "admin")

	// Nom vide → refus.
	w := doJSON(t, r, http.MethodPost, "/api/products", adminToken, gin.H{"name": "", "price": 10.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Prix absent → refus.
	w = doJSON(t, r, http.MethodPost, "/api/products", adminToken, gin.H{"name": "Table"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Prix non numérique → refus au binding.
	w = doJSON(t, r, http.MethodPost, "/api/products", adminToken, gin.H{"name": "Table", "price": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Le signe du prix n'est pas validé à ce niveau.
	w = doJSON(t, r, http.MethodPost, "/api/products", adminToken, gin.H{"name": "Remise", "price": -5.0})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProductRequiresAdmin(t *testing.T) {
	r, _ := newTestAPI(t)
	_, token := registerAndLogin(t, r, "client@example.com", "customer")

	w := doJSON(t, r, http.MethodPost, "/api/products", token, gin.H{"name": "Chaise", "price": 20.0})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/products", "", gin.H{"name": "Chaise", "price": 20.0})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteProductLeavesOrphanCartRows(t *testing.T) {
	r, db := newTestAPI(t)
	userID, token := registerAndLogin(t, r, "alice@example.com", "customer")
	_, adminToken := registerAndLogin(t, r, "admin@example.com", "admin")

	product := models.Product{Name: "Tapis", Price: 25.00}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 1}).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// La ligne de panier orpheline reste en base...
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// ...mais la jointure interne l'exclut des lectures.
	assert.Empty(t, getCart(t, r, userID, token))
}
