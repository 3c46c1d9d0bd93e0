package middleware

import (
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerRole is the role claim the external session issuer puts in owner tokens.
const OwnerRole = "owner"

// OwnerOnly guards mutating routes with an HS256 bearer token carrying
// role=owner. When no secret is configured the guard is a pass-through and
// access control is left to the deployment in front of the service.
func OwnerOnly(cfg *config.Config) fiber.Handler {
	if cfg.OwnerJWTSecret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.OwnerJWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized: invalid or expired token",
			})
		},
		SuccessHandler: requireOwnerClaim,
	})
}

func requireOwnerClaim(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid claims"})
	}

	if role, _ := claims["role"].(string); role != OwnerRole {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Owner access required"})
	}
	return c.Next()
}
