package http

import (
	"strings"

	"github.com/crmventas/negociaciones-api/internal/application/dto"
	"github.com/crmventas/negociaciones-api/internal/domain/entity"
	"github.com/crmventas/negociaciones-api/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

// Locals keys para la identidad del usuario autenticado.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// CookieToken nombre de la cookie de sesión para el dashboard en navegador.
const CookieToken = "token"

// tokenFrom extrae el JWT del header Authorization (Bearer) o, en su defecto,
// de la cookie de sesión.
func tokenFrom(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(CookieToken)
}

// AuthOptional intenta resolver la identidad del solicitante y la deja en
// c.Locals. Nunca bloquea: las rutas con vista pública (ven=) y las de
// invitado deciden después con GetUserID.
func AuthOptional(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := tokenFrom(c); token != "" {
			if claims, err := jwt.Parse(jwtSecret, token); err == nil {
				c.Locals(LocalUserID, claims.UserID)
				c.Locals(LocalUserName, claims.Name)
				c.Locals(LocalRole, claims.Role)
			}
		}
		return c.Next()
	}
}

// AuthRequired exige identidad resuelta (corre después de AuthOptional).
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		return c.Next()
	}
}

// RequireAdmin exige rol admin (corre después de AuthRequired).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acción reservada a administradores"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto; 0 si el solicitante es invitado.
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetUserName devuelve el nombre del usuario autenticado.
func GetUserName(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserName).(string)
	return v
}

// GetRole devuelve el rol del usuario autenticado (RoleEjecutivo si invitado).
func GetRole(c *fiber.Ctx) int {
	v, _ := c.Locals(LocalRole).(int)
	return v
}
