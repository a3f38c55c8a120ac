package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
)

// Repositorios en memoria con las mismas restricciones únicas que el esquema Postgres.

type memProducts struct {
	mu     sync.Mutex
	seq    int64
	rows   map[int64]entity.Product
	cats   *memCategories
	writes int
}

func newMemProducts(cats *memCategories) *memProducts {
	return &memProducts{rows: map[int64]entity.Product{}, cats: cats}
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.barcodeTaken(p.Barcode, 0) {
		return domain.Conflictf("el código de barras %q ya existe", p.Barcode)
	}
	r.seq++
	p.ID = r.seq
	r.rows[p.ID] = *p
	r.writes++
	return nil
}

func (r *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	if p.CategoryID != nil && r.cats != nil {
		if c, ok := r.cats.rows[*p.CategoryID]; ok {
			p.Category = &c
		}
	}
	return &p, nil
}

func (r *memProducts) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.rows))
	for _, p := range r.rows {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.barcodeTaken(p.Barcode, p.ID) {
		return domain.Conflictf("el código de barras %q ya existe", p.Barcode)
	}
	cp := *p
	cp.Category, cp.Supplier = nil, nil
	r.rows[p.ID] = cp
	r.writes++
	return nil
}

func (r *memProducts) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	r.writes++
	return nil
}

func (r *memProducts) barcodeTaken(code string, except int64) bool {
	for id, p := range r.rows {
		if id != except && p.Barcode == code {
			return true
		}
	}
	return false
}

type memCategories struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]entity.Category
}

func newMemCategories() *memCategories { return &memCategories{rows: map[int64]entity.Category{}} }

func (r *memCategories) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return domain.Conflictf("la categoría %q ya existe", c.Name)
	}
	r.seq++
	c.ID = r.seq
	r.rows[c.ID] = *c
	return nil
}

func (r *memCategories) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCategories) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.rows))
	for _, c := range r.rows {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCategories) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(c.Name, c.ID) {
		return domain.Conflictf("la categoría %q ya existe", c.Name)
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *memCategories) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memCategories) nameTaken(name string, except int64) bool {
	for id, c := range r.rows {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

type memSuppliers struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]entity.Supplier
}

func newMemSuppliers() *memSuppliers { return &memSuppliers{rows: map[int64]entity.Supplier{}} }

func (r *memSuppliers) Create(_ context.Context, s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.rows {
		if o.Name == s.Name {
			return domain.Conflictf("el proveedor %q ya existe", s.Name)
		}
	}
	r.seq++
	s.ID = r.seq
	r.rows[s.ID] = *s
	return nil
}

func (r *memSuppliers) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memSuppliers) List(_ context.Context) ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.rows))
	for _, s := range r.rows {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (r *memSuppliers) Update(_ context.Context, s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, o := range r.rows {
		if id != s.ID && o.Name == s.Name {
			return domain.Conflictf("el proveedor %q ya existe", s.Name)
		}
	}
	r.rows[s.ID] = *s
	return nil
}

func (r *memSuppliers) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memUsers struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]entity.User
}

func newMemUsers() *memUsers { return &memUsers{rows: map[int64]entity.User{}} }

func (r *memUsers) emailTaken(email *string, except int64) bool {
	if email == nil {
		return false
	}
	for id, u := range r.rows {
		if id != except && u.Email != nil && *u.Email == *email {
			return true
		}
	}
	return false
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, 0) {
		return domain.Conflictf("el email ya está registrado")
	}
	r.seq++
	u.ID = r.seq
	r.rows[u.ID] = *u
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email != nil && *u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.rows))
	for _, u := range r.rows {
		u := u
		out = append(out, &u)
	}
	return out, nil
}

func (r *memUsers) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, u.ID) {
		return domain.Conflictf("el email ya está registrado")
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *memUsers) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memTickets struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]entity.Ticket
	// staleLast, si > 0, simula una lectura concurrente que no vio el último ticket.
	staleLast int
}

func newMemTickets() *memTickets { return &memTickets{rows: map[int64]entity.Ticket{}} }

func (r *memTickets) taken(t *entity.Ticket) bool {
	for id, o := range r.rows {
		if id != t.ID && o.UserID == t.UserID && o.Day.Equal(t.Day) && o.TicketNumber == t.TicketNumber {
			return true
		}
	}
	return false
}

func (r *memTickets) Create(_ context.Context, t *entity.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(t) {
		return domain.Conflictf("ticket duplicado")
	}
	r.seq++
	t.ID = r.seq
	r.rows[t.ID] = *t
	return nil
}

func (r *memTickets) GetByID(_ context.Context, id int64) (*entity.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *memTickets) LastNumber(_ context.Context, userID int64, from, to time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.staleLast > 0 {
		return r.staleLast - 1, nil
	}
	last := 0
	day := sales.DayRange{Start: from, End: to}
	for _, t := range r.rows {
		if t.UserID == userID && day.Contains(t.Date) && t.TicketNumber > last {
			last = t.TicketNumber
		}
	}
	return last, nil
}

func (r *memTickets) List(_ context.Context) ([]*entity.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Ticket, 0, len(r.rows))
	for _, t := range r.rows {
		t := t
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memTickets) Update(_ context.Context, t *entity.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(t) {
		return domain.Conflictf("ticket duplicado")
	}
	r.rows[t.ID] = *t
	return nil
}

func (r *memTickets) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memTicketItems struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]entity.TicketItem
}

func newMemTicketItems() *memTicketItems { return &memTicketItems{rows: map[int64]entity.TicketItem{}} }

func (r *memTicketItems) Create(_ context.Context, it *entity.TicketItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	it.ID = r.seq
	r.rows[it.ID] = *it
	return nil
}

func (r *memTicketItems) GetByID(_ context.Context, id int64) (*entity.TicketItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memTicketItems) List(ctx context.Context) ([]*entity.TicketItem, error) {
	return r.filter(func(entity.TicketItem) bool { return true }), nil
}

func (r *memTicketItems) ListByTicket(_ context.Context, ticketID int64) ([]*entity.TicketItem, error) {
	return r.filter(func(it entity.TicketItem) bool { return it.TicketID == ticketID }), nil
}

func (r *memTicketItems) filter(keep func(entity.TicketItem) bool) []*entity.TicketItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.TicketItem{}
	for _, it := range r.rows {
		if keep(it) {
			it := it
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memTicketItems) Update(_ context.Context, it *entity.TicketItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[it.ID] = *it
	return nil
}

func (r *memTicketItems) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memCash struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]entity.CashMovement
}

func newMemCash() *memCash { return &memCash{rows: map[int64]entity.CashMovement{}} }

func (r *memCash) Create(_ context.Context, m *entity.CashMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = r.seq
	r.rows[m.ID] = *m
	return nil
}

func (r *memCash) GetByID(_ context.Context, id int64) (*entity.CashMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memCash) List(_ context.Context) ([]*entity.CashMovement, error) {
	return r.ListByUser(context.Background(), 0, nil)
}

func (r *memCash) ListByUser(_ context.Context, userID int64, day *sales.DayRange) ([]*entity.CashMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.CashMovement{}
	for _, m := range r.rows {
		if userID != 0 && m.UserID != userID {
			continue
		}
		if day != nil && !day.Contains(m.CreatedAt) {
			continue
		}
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCash) Update(_ context.Context, m *entity.CashMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[m.ID] = *m
	return nil
}

func (r *memCash) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type memSessions struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]entity.SessionEvent
	fail error
}

func newMemSessions() *memSessions { return &memSessions{rows: map[int64]entity.SessionEvent{}} }

func (r *memSessions) Create(_ context.Context, e *entity.SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.seq++
	e.ID = r.seq
	r.rows[e.ID] = *e
	return nil
}

func (r *memSessions) GetByID(_ context.Context, id int64) (*entity.SessionEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *memSessions) List(_ context.Context) ([]*entity.SessionEvent, error) {
	return r.ListByUser(context.Background(), 0, nil)
}

func (r *memSessions) ListByUser(_ context.Context, userID int64, day *sales.DayRange) ([]*entity.SessionEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.SessionEvent{}
	for _, e := range r.rows {
		if userID != 0 && e.UserID != userID {
			continue
		}
		if day != nil && !day.Contains(e.Timestamp) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *memSessions) Update(_ context.Context, e *entity.SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[e.ID] = *e
	return nil
}

func (r *memSessions) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}
