// Package memory implementa los puertos de persistencia en memoria.
// Replica las restricciones del esquema Postgres (únicos, FK, cascadas) y sirve
// para desarrollo local sin base de datos y para pruebas de la capa HTTP.
package memory

import (
	"sync"

	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
)

// Store agrupa todas las tablas bajo un solo candado.
type Store struct {
	mu         sync.RWMutex
	seq        int64
	categories map[int64]entity.Category
	suppliers  map[int64]entity.Supplier
	products   map[int64]entity.Product
	users      map[int64]entity.User
	tickets    map[int64]entity.Ticket
	items      map[int64]entity.TicketItem
	cash       map[int64]entity.CashMovement
	sessions   map[int64]entity.SessionEvent
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		categories: map[int64]entity.Category{},
		suppliers:  map[int64]entity.Supplier{},
		products:   map[int64]entity.Product{},
		users:      map[int64]entity.User{},
		tickets:    map[int64]entity.Ticket{},
		items:      map[int64]entity.TicketItem{},
		cash:       map[int64]entity.CashMovement{},
		sessions:   map[int64]entity.SessionEvent{},
	}
}

// nextID se llama con el candado de escritura tomado.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func conflict(msg string) error {
	return &domain.Error{Kind: domain.ErrConflict, Msg: msg}
}

var (
	errMissingRef = &domain.Error{Kind: domain.ErrInvalidInput, Msg: "referencia a un registro inexistente"}
	errOutOfRange = &domain.Error{Kind: domain.ErrInvalidInput, Msg: "valor fuera de rango"}
)

func notFound(what string, id int64) error {
	return domain.NotFoundf("%s %d no encontrado", what, id)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
