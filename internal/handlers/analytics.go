package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qapro_back_end/internal/services"
	"qapro_back_end/internal/store"
)

// GetAnalytics renvoie les statistiques du dashboard admin : chiffre
// d'affaires, nombre de commandes et produits en stock faible.
func GetAnalytics(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, services.ComputeAnalytics(s))
	}
}
