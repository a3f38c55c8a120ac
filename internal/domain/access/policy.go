package access

import (
	"slices"

	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
)

// Identity es el usuario autenticado de la petición (resuelto desde el token).
type Identity struct {
	UserID int64
	Role   string
}

// Valid indica si la identidad tiene usuario y rol.
func (id Identity) Valid() bool {
	return id.UserID > 0 && id.Role != ""
}

// IsAdmin atajo para el rol administrador.
func (id Identity) IsAdmin() bool {
	return id.Role == entity.RoleAdmin
}

// Authorize decide si la identidad puede ejecutar una operación que exige alguno de roles.
// Sin roles requeridos basta con estar autenticado.
func Authorize(id Identity, roles ...string) error {
	if !id.Valid() {
		return domain.ErrUnauthorized
	}
	if len(roles) == 0 || slices.Contains(roles, id.Role) {
		return nil
	}
	return domain.ErrForbidden
}
