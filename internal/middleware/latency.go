package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Délais hérités de la maquette : le front d'origine simulait le réseau
// avec ces constantes. Désactivé par défaut (SIMULATE_LATENCY).
const (
	LoginDelay    = 500 * time.Millisecond
	CatalogDelay  = 300 * time.Millisecond
	CheckoutDelay = 800 * time.Millisecond
)

// SimulateLatency retarde la réponse pour reproduire le comportement du
// démonstrateur d'origine. Quand enabled est faux, le middleware est neutre.
func SimulateLatency(enabled bool, d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if enabled {
			select {
			case <-time.After(d):
			case <-c.Request.Context().Done():
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
