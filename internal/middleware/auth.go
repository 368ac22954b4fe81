// internal/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/models"
	"github.com/shopstack/storefront-backend/internal/repository"
	"github.com/shopstack/storefront-backend/internal/utils"
)

// AuthRequired verifies the bearer token and resolves the caller's role.
// The stored profile is authoritative for role (it is set out of band,
// never via the profile-update path); the token claim is the fallback for
// identities that have not touched the store yet.
func AuthRequired(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role := claims.Role
		profile, err := users.Find(c.Request.Context(), claims.UserID)
		switch {
		case err == nil:
			role = string(profile.Role)
		case !errors.Is(err, kvstore.ErrKeyNotFound):
			// A store failure must not let the token claim decide the
			// role: a demoted admin would keep admin rights.
			logrus.WithField("user_id", claims.UserID).WithError(err).Error("Failed to resolve user role")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve user role",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_role", role)
		c.Set("claims", claims)
		c.Next()
	}
}

func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
