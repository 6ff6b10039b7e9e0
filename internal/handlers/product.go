package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"qapro_back_end/internal/models"
	"qapro_back_end/internal/store"
)

// GetProducts renvoie le catalogue complet, dans l'ordre d'insertion.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.ListProducts())
	}
}

// UpdateProduct remplace un produit existant (édition admin). No-op si le
// produit n'existe plus — le front peut avoir une liste périmée.
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
			return
		}
		p.ID = c.Param("id")

		if p.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix ne peut pas être négatif"})
			return
		}
		if p.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le stock ne peut pas être négatif"})
			return
		}

		s.UpdateProduct(p)
		logrus.Infof("✅ Produit %s mis à jour", p.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour", "product": p})
	}
}

// DeleteProduct retire un produit du catalogue. No-op si absent.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s.DeleteProduct(id)
		logrus.Infof("🗑️ Produit %s supprimé", id)
		c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
	}
}
