package access

import "golang.org/x/crypto/bcrypt"

// Hasher hashea y verifica contraseñas con bcrypt.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher; cost fuera de rango usa bcrypt.DefaultCost.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash devuelve el hash irreversible de plain.
func (h Hasher) Hash(plain string) (string, error) {
	cost := h.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara plain contra el hash almacenado.
func (h Hasher) Verify(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
