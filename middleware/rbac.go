package middleware

import (
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RequireRole(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("jwtClaims").(*utils.JWTClaims)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		}
		for _, role := range allowedRoles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Forbidden"})
	}
}

func RequireTataUsaha() fiber.Handler {
	return RequireRole(models.RoleTataUsaha, models.RoleAdmin)
}
func RequirePimpinan() fiber.Handler {
	return RequireRole(models.RolePimpinan, models.RoleAdmin)
}
func RequireAdmin() fiber.Handler { return RequireRole(models.RoleAdmin) }

func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	claims, ok := c.Locals("jwtClaims").(*utils.JWTClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return &models.User{
		Model: gorm.Model{ID: claims.UserID},
		Role:  claims.Role,
		Email: claims.Email,
	}, nil
}
