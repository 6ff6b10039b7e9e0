package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qapro_back_end/internal/models"
)

// RequireAdmin vérifie que l'utilisateur a le rôle "ADMIN"
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}
