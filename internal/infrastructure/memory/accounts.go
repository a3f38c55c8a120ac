package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria. El email se compara tal cual llega (el caso de uso lo normaliza).
type UserRepo struct{ s *Store }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) check(u *entity.User) error {
	if u.Role != entity.RoleAdmin && u.Role != entity.RoleEmpleado {
		return errOutOfRange
	}
	if u.Email == nil {
		return nil
	}
	for id, other := range r.s.users {
		if id != u.ID && other.Email != nil && *other.Email == *u.Email {
			return conflict("el email ya está registrado")
		}
	}
	return nil
}

func (r *UserRepo) store(u *entity.User) {
	stored := *u
	stored.Email = clonePtr(u.Email)
	r.s.users[u.ID] = stored
}

func copyUser(u entity.User) *entity.User {
	u.Email = clonePtr(u.Email)
	return &u
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(u); err != nil {
		return err
	}
	u.ID = r.s.nextID()
	r.store(u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email != nil && *u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, copyUser(u))
	}
	slices.SortFunc(out, func(a, b *entity.User) int {
		return cmp.Or(cmp.Compare(a.FullName, b.FullName), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return notFound("usuario", u.ID)
	}
	if err := r.check(u); err != nil {
		return err
	}
	r.store(u)
	return nil
}

// Delete borra en cascada sus eventos de sesión; tickets y movimientos de caja lo impiden.
func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return notFound("usuario", id)
	}
	for _, t := range r.s.tickets {
		if t.UserID == id {
			return errMissingRef
		}
	}
	for _, m := range r.s.cash {
		if m.UserID == id {
			return errMissingRef
		}
	}
	for eid, e := range r.s.sessions {
		if e.UserID == id {
			delete(r.s.sessions, eid)
		}
	}
	delete(r.s.users, id)
	return nil
}
