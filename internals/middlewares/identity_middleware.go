package middlewares

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"agroferma_backend/internals/configs"
)

// IdentityMiddleware mengisi Locals("user_id") dari header X-User-Id atau
// klaim user_id pada bearer token. Tidak pernah menolak request — endpoint
// yang butuh identitas yang memutuskan 401.
func IdentityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := strings.TrimSpace(c.Get("X-User-Id")); v != "" {
			c.Locals("user_id", v)
			return c.Next()
		}

		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authz, "Bearer ") || configs.JWTSecret == "" {
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authz, "Bearer ")
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: false}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			log.Println("[WARN] Gagal parse token:", err)
			return c.Next()
		}

		switch v := claims["user_id"].(type) {
		case string:
			c.Locals("user_id", strings.TrimSpace(v))
		case float64:
			c.Locals("user_id", fmt.Sprintf("%.0f", v))
		}
		return c.Next()
	}
}
