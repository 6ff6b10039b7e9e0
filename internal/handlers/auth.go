package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"qapro_back_end/internal/models"
)

// Login accepte n'importe quel couple email/rôle : c'est un environnement
// de démonstration, pas une frontière de sécurité. Un utilisateur est
// synthétisé à la volée (nom = partie locale de l'email) et renvoyé avec
// son token.
func Login(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required"`
			Role  string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		role := models.UserRole(input.Role)
		if role != models.RoleCustomer && role != models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rôle inconnu (CUSTOMER ou ADMIN attendu)"})
			return
		}

		user := models.User{
			ID:    uuid.NewString(),
			Name:  strings.SplitN(input.Email, "@", 2)[0],
			Email: input.Email,
			Role:  role,
		}

		token, err := generateJWT(user, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
			return
		}

		logrus.Infof("✅ Connexion %s (%s)", user.Email, user.Role)
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user,
		})
	}
}

func generateJWT(user models.User, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Me renvoie l'utilisateur porté par le token courant.
func Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId": userID,
		"name":   c.GetString("name"),
		"email":  c.GetString("email"),
		"role":   c.GetString("role"),
	})
}
