package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// TicketUseCase emite tickets con numeración consecutiva por usuario y día calendario.
//
// La secuencia es leer el último número del día y escribir el siguiente. Dos peticiones simultáneas
// del mismo usuario pueden calcular el mismo número: la restricción única de la tabla rechaza a la
// segunda y el llamador recibe ErrConflict con el número en disputa. No se reintenta aquí.
type TicketUseCase struct {
	repo     repository.TicketRepository
	validate *validation.Validator
	loc      *time.Location
	now      Clock
}

// NewTicketUseCase construye el caso de uso. loc define qué es "un día" para la numeración.
func NewTicketUseCase(repo repository.TicketRepository, v *validation.Validator, loc *time.Location) *TicketUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &TicketUseCase{repo: repo, validate: v, loc: loc, now: time.Now}
}

// Create emite el siguiente ticket del usuario para el día de la fecha indicada (hoy por defecto).
// Solo un admin puede emitir a nombre de otro usuario.
func (uc *TicketUseCase) Create(ctx context.Context, id access.Identity, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	userID, err := ownerFor(id, in.UsuarioID)
	if err != nil {
		return nil, err
	}
	date, err := parseInstant(in.Fecha, uc.loc, uc.now())
	if err != nil {
		return nil, err
	}
	day := sales.DayOf(date, uc.loc)
	last, err := uc.repo.LastNumber(ctx, userID, day.Start, day.End)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	ticket := &entity.Ticket{
		UserID:       userID,
		TicketNumber: sales.NextTicketNumber(last),
		Date:         date,
		Day:          day.Date(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, ticket); err != nil {
		return nil, ticketWriteError("no se pudo crear el ticket", ticket, err)
	}
	return toTicketResponse(ticket), nil
}

// GetByID obtiene un ticket.
func (uc *TicketUseCase) GetByID(ctx context.Context, id int64) (*dto.TicketResponse, error) {
	ticket, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// List lista todos los tickets, el más reciente primero.
func (uc *TicketUseCase) List(ctx context.Context) (dto.ListResponse[dto.TicketResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.TicketResponse]{}, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t))
	}
	return dto.NewList(items), nil
}

// Update corrige usuario, número o fecha de un ticket. La unicidad (usuario, día, número)
// se vuelve a verificar al escribir.
func (uc *TicketUseCase) Update(ctx context.Context, id int64, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	ticket, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UsuarioID != nil {
		ticket.UserID = *in.UsuarioID
	}
	if in.NumeroTicket != nil {
		ticket.TicketNumber = *in.NumeroTicket
	}
	if in.Fecha != nil {
		date, err := parseInstant(in.Fecha, uc.loc, ticket.Date)
		if err != nil {
			return nil, err
		}
		ticket.Date = date
		ticket.Day = sales.DayOf(date, uc.loc).Date()
	}
	ticket.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, ticket); err != nil {
		return nil, ticketWriteError("no se pudo actualizar el ticket", ticket, err)
	}
	return toTicketResponse(ticket), nil
}

// Delete elimina un ticket y, en cascada, sus líneas.
func (uc *TicketUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *TicketUseCase) find(ctx context.Context, id int64) (*entity.Ticket, error) {
	ticket, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.NotFoundf("ticket %d no encontrado", id)
	}
	return ticket, nil
}

// ticketWriteError nombra el número en disputa cuando la escritura choca con la restricción única.
func ticketWriteError(msg string, t *entity.Ticket, err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return &domain.Error{
			Kind:  domain.ErrConflict,
			Msg:   ticketConflictMessage(t),
			Cause: err,
		}
	}
	return persistError(msg, err)
}

func ticketConflictMessage(t *entity.Ticket) string {
	return fmt.Sprintf("el ticket número %d ya existe para el usuario %d el %s; reintente",
		t.TicketNumber, t.UserID, t.Day.Format(sales.DateLayout))
}

// ownerFor resuelve a nombre de quién se registra una operación: el usuario autenticado por defecto.
func ownerFor(id access.Identity, requested *int64) (int64, error) {
	if requested == nil || *requested == id.UserID {
		return id.UserID, nil
	}
	if !id.IsAdmin() {
		return 0, &domain.Error{Kind: domain.ErrForbidden, Msg: "solo un admin puede registrar a nombre de otro usuario"}
	}
	return *requested, nil
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:           t.ID,
		UsuarioID:    t.UserID,
		NumeroTicket: t.TicketNumber,
		Fecha:        t.Date,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
