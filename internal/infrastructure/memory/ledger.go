package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
)

var (
	_ repository.CashMovementRepository = (*CashMovementRepo)(nil)
	_ repository.SessionEventRepository = (*SessionEventRepo)(nil)
)

// CashMovementRepo movimientos de caja en memoria, del más reciente al más antiguo.
type CashMovementRepo struct{ s *Store }

// CashMovements devuelve el repositorio de movimientos de caja.
func (s *Store) CashMovements() *CashMovementRepo { return &CashMovementRepo{s: s} }

func (r *CashMovementRepo) check(m *entity.CashMovement) error {
	if _, ok := r.s.users[m.UserID]; !ok {
		return errMissingRef
	}
	if (m.Type != entity.CashIn && m.Type != entity.CashOut) || m.Amount.IsNegative() {
		return errOutOfRange
	}
	return nil
}

func (r *CashMovementRepo) store(m *entity.CashMovement) {
	stored := *m
	stored.Description = clonePtr(m.Description)
	r.s.cash[m.ID] = stored
}

func (r *CashMovementRepo) Create(_ context.Context, m *entity.CashMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(m); err != nil {
		return err
	}
	m.ID = r.s.nextID()
	r.store(m)
	return nil
}

func (r *CashMovementRepo) GetByID(_ context.Context, id int64) (*entity.CashMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.cash[id]
	if !ok {
		return nil, nil
	}
	m.Description = clonePtr(m.Description)
	return &m, nil
}

func (r *CashMovementRepo) List(_ context.Context) ([]*entity.CashMovement, error) {
	return r.filter(func(*entity.CashMovement) bool { return true }), nil
}

func (r *CashMovementRepo) ListByUser(_ context.Context, userID int64, day *sales.DayRange) ([]*entity.CashMovement, error) {
	return r.filter(func(m *entity.CashMovement) bool {
		return m.UserID == userID && (day == nil || day.Contains(m.CreatedAt))
	}), nil
}

func (r *CashMovementRepo) filter(keep func(*entity.CashMovement) bool) []*entity.CashMovement {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.CashMovement, 0)
	for _, m := range r.s.cash {
		if keep(&m) {
			m.Description = clonePtr(m.Description)
			out = append(out, &m)
		}
	}
	slices.SortFunc(out, func(a, b *entity.CashMovement) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return out
}

func (r *CashMovementRepo) Update(_ context.Context, m *entity.CashMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cash[m.ID]; !ok {
		return notFound("movimiento de caja", m.ID)
	}
	if err := r.check(m); err != nil {
		return err
	}
	r.store(m)
	return nil
}

func (r *CashMovementRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cash[id]; !ok {
		return notFound("movimiento de caja", id)
	}
	delete(r.s.cash, id)
	return nil
}

// SessionEventRepo eventos de sesión en memoria, por timestamp descendente.
type SessionEventRepo struct{ s *Store }

// SessionEvents devuelve el repositorio de eventos de sesión.
func (s *Store) SessionEvents() *SessionEventRepo { return &SessionEventRepo{s: s} }

func (r *SessionEventRepo) check(e *entity.SessionEvent) error {
	if _, ok := r.s.users[e.UserID]; !ok {
		return errMissingRef
	}
	if e.Type != entity.SessionLogin && e.Type != entity.SessionLogout {
		return errOutOfRange
	}
	return nil
}

func (r *SessionEventRepo) Create(_ context.Context, e *entity.SessionEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(e); err != nil {
		return err
	}
	e.ID = r.s.nextID()
	r.s.sessions[e.ID] = *e
	return nil
}

func (r *SessionEventRepo) GetByID(_ context.Context, id int64) (*entity.SessionEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *SessionEventRepo) List(_ context.Context) ([]*entity.SessionEvent, error) {
	return r.filter(func(*entity.SessionEvent) bool { return true }), nil
}

func (r *SessionEventRepo) ListByUser(_ context.Context, userID int64, day *sales.DayRange) ([]*entity.SessionEvent, error) {
	return r.filter(func(e *entity.SessionEvent) bool {
		return e.UserID == userID && (day == nil || day.Contains(e.Timestamp))
	}), nil
}

func (r *SessionEventRepo) filter(keep func(*entity.SessionEvent) bool) []*entity.SessionEvent {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.SessionEvent, 0)
	for _, e := range r.s.sessions {
		if keep(&e) {
			out = append(out, &e)
		}
	}
	slices.SortFunc(out, func(a, b *entity.SessionEvent) int {
		return cmp.Or(b.Timestamp.Compare(a.Timestamp), cmp.Compare(b.ID, a.ID))
	})
	return out
}

func (r *SessionEventRepo) Update(_ context.Context, e *entity.SessionEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[e.ID]; !ok {
		return notFound("evento de sesión", e.ID)
	}
	if err := r.check(e); err != nil {
		return err
	}
	r.s.sessions[e.ID] = *e
	return nil
}

func (r *SessionEventRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[id]; !ok {
		return notFound("evento de sesión", id)
	}
	delete(r.s.sessions, id)
	return nil
}
