package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
)

// UserLoader carga el usuario para resolver rol y estado en cada request.
// El token solo lleva el ID: el rol siempre se lee fresco de la DB, así un
// cambio de rol o una desactivación aplican de inmediato.
type UserLoader interface {
	GetByID(id string) (*entity.User, error)
}

// AuthRequired valida el Bearer Token, carga el usuario y deja ID y rol en
// c.Locals. Token ausente o inválido corta con 401; cuenta desactivada, 403.
func AuthRequired(jwtSecret string, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return respondError(c, fiber.StatusUnauthorized, "token requerido")
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		user, err := users.GetByID(userID)
		if err != nil {
			return respondError(c, fiber.StatusInternalServerError, "error interno del servidor")
		}
		if user == nil {
			return respondError(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		if !user.IsActive {
			return respondError(c, fiber.StatusForbidden, "cuenta desactivada")
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// AuthOptional intenta autenticar si hay token, pero nunca corta la request:
// sin token (o con token inválido) la request sigue como anónima.
func AuthOptional(jwtSecret string, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		user, err := users.GetByID(userID)
		if err != nil || user == nil || !user.IsActive {
			return c.Next()
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}

// RequireAdmin corta con 403 si el usuario autenticado no es admin.
// Debe ir después de AuthRequired.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return respondError(c, fiber.StatusForbidden, "se requiere rol de administrador")
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
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

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalUserRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
