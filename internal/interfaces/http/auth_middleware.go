package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/davidmr/almacen-api/internal/application/dto"
	"github.com/davidmr/almacen-api/pkg/jwt"
)

// Locals keys para UserID y UserName en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y UserName a c.Locals.
// El UserID extraído es el responsable que el motor de movimientos registra.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, name, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, name)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserName devuelve el nombre del usuario del contexto.
func GetUserName(c *fiber.Ctx) string {
	v := c.Locals(LocalUserName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
