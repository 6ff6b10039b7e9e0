package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"qapro_back_end/internal/models"
)

// AuthRequired vérifie le bearer token et place l'utilisateur dans le
// contexte de la requête. Il n'y a volontairement aucune autre forme de
// session : l'utilisateur courant est toujours celui du token.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userFromRequest(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		setUser(c, user)
		c.Next()
	}
}

// OptionalAuth fait la même chose qu'AuthRequired mais laisse passer les
// requêtes anonymes — le checkout invité en a besoin.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		user, err := userFromRequest(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		setUser(c, user)
		c.Next()
	}
}

func userFromRequest(c *gin.Context, secret []byte) (models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return models.User{}, errors.New("Token manquant")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.User{}, errors.New("Format Authorization invalide")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, errors.New("Token invalide")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, errors.New("Token invalide")
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return models.User{}, errors.New("user_id manquant")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return models.User{ID: userID, Name: name, Email: email, Role: models.UserRole(role)}, nil
}

func setUser(c *gin.Context, u models.User) {
	c.Set("user_id", u.ID)
	c.Set("email", u.Email)
	c.Set("name", u.Name)
	c.Set("role", string(u.Role))
}
