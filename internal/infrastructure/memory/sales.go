package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

var (
	_ repository.TicketRepository     = (*TicketRepo)(nil)
	_ repository.TicketItemRepository = (*TicketItemRepo)(nil)
)

// TicketRepo tickets en memoria con la restricción (usuario, día, número).
type TicketRepo struct{ s *Store }

// Tickets devuelve el repositorio de tickets.
func (s *Store) Tickets() *TicketRepo { return &TicketRepo{s: s} }

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *TicketRepo) check(t *entity.Ticket) error {
	if _, ok := r.s.users[t.UserID]; !ok {
		return errMissingRef
	}
	if t.TicketNumber < 1 {
		return errOutOfRange
	}
	for id, other := range r.s.tickets {
		if id != t.ID && other.UserID == t.UserID && other.TicketNumber == t.TicketNumber && sameDay(other.Day, t.Day) {
			return conflict("el número de ticket ya existe para ese usuario y día")
		}
	}
	return nil
}

func (r *TicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(t); err != nil {
		return err
	}
	t.ID = r.s.nextID()
	r.s.tickets[t.ID] = *t
	return nil
}

func (r *TicketRepo) GetByID(_ context.Context, id int64) (*entity.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tickets[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TicketRepo) LastNumber(_ context.Context, userID int64, from, to time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	last := 0
	for _, t := range r.s.tickets {
		if t.UserID == userID && !t.Date.Before(from) && t.Date.Before(to) {
			last = max(last, t.TicketNumber)
		}
	}
	return last, nil
}

func (r *TicketRepo) List(_ context.Context) ([]*entity.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Ticket, 0, len(r.s.tickets))
	for _, t := range r.s.tickets {
		out = append(out, &t)
	}
	slices.SortFunc(out, func(a, b *entity.Ticket) int {
		return cmp.Or(b.Date.Compare(a.Date), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

func (r *TicketRepo) Update(_ context.Context, t *entity.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tickets[t.ID]; !ok {
		return notFound("ticket", t.ID)
	}
	if err := r.check(t); err != nil {
		return err
	}
	r.s.tickets[t.ID] = *t
	return nil
}

// Delete elimina el ticket y sus líneas.
func (r *TicketRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tickets[id]; !ok {
		return notFound("ticket", id)
	}
	for iid, it := range r.s.items {
		if it.TicketID == id {
			delete(r.s.items, iid)
		}
	}
	delete(r.s.tickets, id)
	return nil
}

// TicketItemRepo líneas de ticket en memoria.
type TicketItemRepo struct{ s *Store }

// TicketItems devuelve el repositorio de líneas.
func (s *Store) TicketItems() *TicketItemRepo { return &TicketItemRepo{s: s} }

func (r *TicketItemRepo) check(it *entity.TicketItem) error {
	if _, ok := r.s.tickets[it.TicketID]; !ok {
		return errMissingRef
	}
	if _, ok := r.s.products[it.ProductID]; !ok {
		return errMissingRef
	}
	if it.Quantity < 1 || it.UnitPrice.IsNegative() {
		return errOutOfRange
	}
	return nil
}

func (r *TicketItemRepo) Create(_ context.Context, it *entity.TicketItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(it); err != nil {
		return err
	}
	it.ID = r.s.nextID()
	r.s.items[it.ID] = *it
	return nil
}

func (r *TicketItemRepo) GetByID(_ context.Context, id int64) (*entity.TicketItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *TicketItemRepo) List(_ context.Context) ([]*entity.TicketItem, error) {
	return r.filter(func(*entity.TicketItem) bool { return true }, func(a, b *entity.TicketItem) int {
		return cmp.Or(cmp.Compare(b.TicketID, a.TicketID), cmp.Compare(a.ID, b.ID))
	}), nil
}

func (r *TicketItemRepo) ListByTicket(_ context.Context, ticketID int64) ([]*entity.TicketItem, error) {
	return r.filter(func(it *entity.TicketItem) bool { return it.TicketID == ticketID }, func(a, b *entity.TicketItem) int {
		return cmp.Compare(a.ID, b.ID)
	}), nil
}

func (r *TicketItemRepo) filter(keep func(*entity.TicketItem) bool, order func(a, b *entity.TicketItem) int) []*entity.TicketItem {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.TicketItem, 0)
	for _, it := range r.s.items {
		if keep(&it) {
			out = append(out, &it)
		}
	}
	slices.SortFunc(out, order)
	return out
}

func (r *TicketItemRepo) Update(_ context.Context, it *entity.TicketItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID]; !ok {
		return notFound("línea de ticket", it.ID)
	}
	if err := r.check(it); err != nil {
		return err
	}
	r.s.items[it.ID] = *it
	return nil
}

func (r *TicketItemRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return notFound("línea de ticket", id)
	}
	delete(r.s.items, id)
	return nil
}
