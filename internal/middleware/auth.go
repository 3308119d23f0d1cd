package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/auth"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/types"
)

type AuthenticatedUser struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID *uint  `json:"organization_id"`
}

// AuthConfig parameterizes the one middleware that replaces the near-duplicate
// implementations found across the original verticals: which claim carries the
// subject, and whether the subject is looked up by id or by email.
type AuthConfig struct {
	ClaimName     string // empty accepts "user_id", "sub" and "id"
	LookupByEmail bool
}

func Auth(database *gorm.DB, cfg AuthConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			response.Error(ctx, apperr.Unauthorized("Authorization token is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(ctx, apperr.Unauthorized("Authorization header format must be Bearer {token}"))
			return
		}

		token, err := auth.VerifyToken(parts[1])

		if err != nil || !token.Valid {
			response.Error(ctx, apperr.Unauthorized("Invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			response.Error(ctx, apperr.Unauthorized("Invalid token claims"))
			return
		}

		if tokenType, _ := claims["type"].(string); tokenType == auth.TypeRefresh {
			response.Error(ctx, apperr.Unauthorized("Refresh token cannot be used for API access"))
			return
		}

		var user models.User

		if cfg.LookupByEmail {
			email, _ := claims["email"].(string)
			if email == "" {
				response.Error(ctx, apperr.Unauthorized("Invalid email in token claims"))
				return
			}
			err = database.Where("email = ?", email).First(&user).Error
		} else {
			userID, ok := auth.UserIDFromClaims(claims, cfg.ClaimName)
			if !ok {
				response.Error(ctx, apperr.Unauthorized("Invalid user ID in token claims"))
				return
			}
			err = database.Where("id = ?", userID).First(&user).Error
		}

		if err != nil {
			response.Error(ctx, apperr.Unauthorized("User not found"))
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			OrganizationID: user.OrganizationID,
		})
		ctx.Next()
	}
}
