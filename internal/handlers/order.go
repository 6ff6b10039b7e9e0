package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"qapro_back_end/internal/models"
	"qapro_back_end/internal/services"
	"qapro_back_end/internal/store"
)

// PlaceOrder transforme le panier envoyé en commande payée. Le stock est
// validé puis déduit atomiquement ; en cas d'échec, rien n'est modifié et
// le client garde son panier tel quel.
func PlaceOrder(checkout *services.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Items []models.CartItem `json:"items"`
			Total float64           `json:"total"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
			return
		}

		if len(input.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
			return
		}
		for _, item := range input.Items {
			if item.ProductID == "" || item.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Ligne de panier invalide"})
				return
			}
		}
		if input.Total < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Total invalide"})
			return
		}

		order, err := checkout.PlaceOrder(c.Request.Context(), c.GetString("user_id"), input.Items, input.Total)
		if err != nil {
			var stockErr *services.InsufficientStockError
			switch {
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error(), "product": stockErr.ProductName})
			case errors.Is(err, services.ErrTotalMismatch):
				c.JSON(http.StatusConflict, gin.H{"error": "Le total ne correspond plus aux prix du catalogue"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
			}
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders renvoie le registre des commandes, la plus récente en premier.
func GetOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.ListOrders()
		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"count":  len(orders),
		})
	}
}
