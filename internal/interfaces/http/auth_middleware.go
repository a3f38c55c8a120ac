package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/pkg/jwt"
)

// Locals keys de la petición autenticada.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalClaims = "jwt_claims"
	localCause  = "error_cause"
)

// Authenticator valida un token; lo implementa *auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (access.Identity, *jwt.Claims, error)
}

// AuthMiddleware valida el Bearer Token (firma, expiración y revocación) y deja la identidad en c.Locals.
func AuthMiddleware(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return respondError(c, &domain.Error{Kind: domain.ErrUnauthorized, Msg: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return respondError(c, &domain.Error{Kind: domain.ErrUnauthorized, Msg: "formato: Bearer <token>"})
		}
		id, claims, err := a.Authenticate(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, id.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRole autoriza la ruta si la identidad tiene alguno de los roles. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := access.Authorize(GetIdentity(c), roles...); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (0 sin autenticar).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}

// GetIdentity identidad autenticada de la petición.
func GetIdentity(c *fiber.Ctx) access.Identity {
	return access.Identity{UserID: GetUserID(c), Role: GetRole(c)}
}

// GetClaims claims del token de la petición (nil sin autenticar).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}
