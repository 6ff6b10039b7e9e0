package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qapro_back_end/internal/models"
	"qapro_back_end/internal/services"
	"qapro_back_end/internal/store"
)

// PriceCart valorise un panier client aux prix courants du catalogue.
// Les lignes dont le produit a disparu sont ignorées sans erreur : le
// panier vit côté client et peut référencer des produits supprimés.
func PriceCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Items []models.CartItem `json:"items"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
			return
		}

		for _, item := range input.Items {
			if item.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
				return
			}
		}

		lines, subtotal := services.ReconcileCart(input.Items, s.ListProducts())
		c.JSON(http.StatusOK, gin.H{
			"items":    lines,
			"subtotal": subtotal,
			"count":    len(lines),
		})
	}
}
