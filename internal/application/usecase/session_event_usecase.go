package usecase

import (
	"context"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// SessionEventUseCase bitácora de inicios y cierres de sesión.
type SessionEventUseCase struct {
	repo     repository.SessionEventRepository
	validate *validation.Validator
	loc      *time.Location
	now      Clock
}

// NewSessionEventUseCase construye el caso de uso.
func NewSessionEventUseCase(repo repository.SessionEventRepository, v *validation.Validator, loc *time.Location) *SessionEventUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &SessionEventUseCase{repo: repo, validate: v, loc: loc, now: time.Now}
}

// Create registra un evento; sin timestamp usa la hora actual.
func (uc *SessionEventUseCase) Create(ctx context.Context, id access.Identity, in dto.CreateSessionEventRequest) (*dto.SessionEventResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	userID, err := ownerFor(id, in.UsuarioID)
	if err != nil {
		return nil, err
	}
	ts, err := parseInstant(in.Timestamp, uc.loc, uc.now())
	if err != nil {
		return nil, err
	}
	return uc.Record(ctx, userID, in.Tipo, ts)
}

// Record persiste un evento ya resuelto. Lo usan login y logout.
func (uc *SessionEventUseCase) Record(ctx context.Context, userID int64, kind string, ts time.Time) (*dto.SessionEventResponse, error) {
	event := &entity.SessionEvent{UserID: userID, Type: kind, Timestamp: ts}
	if err := uc.repo.Create(ctx, event); err != nil {
		return nil, persistError("no se pudo registrar el evento de sesión", err)
	}
	return toSessionEventResponse(event), nil
}

// GetByID obtiene un evento.
func (uc *SessionEventUseCase) GetByID(ctx context.Context, id int64) (*dto.SessionEventResponse, error) {
	event, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSessionEventResponse(event), nil
}

// List lista todos los eventos por timestamp descendente.
func (uc *SessionEventUseCase) List(ctx context.Context) (dto.ListResponse[dto.SessionEventResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.SessionEventResponse]{}, err
	}
	return toSessionEventList(list), nil
}

// ListForUser lista los eventos de un usuario, opcionalmente de un solo día.
func (uc *SessionEventUseCase) ListForUser(ctx context.Context, userID int64, date string) (dto.ListResponse[dto.SessionEventResponse], error) {
	day, err := DayFilter(date, uc.loc)
	if err != nil {
		return dto.ListResponse[dto.SessionEventResponse]{}, err
	}
	list, err := uc.repo.ListByUser(ctx, userID, day)
	if err != nil {
		return dto.ListResponse[dto.SessionEventResponse]{}, err
	}
	return toSessionEventList(list), nil
}

// Update corrección administrativa de un evento.
func (uc *SessionEventUseCase) Update(ctx context.Context, id int64, in dto.UpdateSessionEventRequest) (*dto.SessionEventResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	event, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UsuarioID != nil {
		event.UserID = *in.UsuarioID
	}
	if in.Tipo != nil {
		event.Type = *in.Tipo
	}
	if in.Timestamp != nil {
		ts, err := parseInstant(in.Timestamp, uc.loc, event.Timestamp)
		if err != nil {
			return nil, err
		}
		event.Timestamp = ts
	}
	if err := uc.repo.Update(ctx, event); err != nil {
		return nil, persistError("no se pudo actualizar el evento de sesión", err)
	}
	return toSessionEventResponse(event), nil
}

// Delete elimina un evento.
func (uc *SessionEventUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *SessionEventUseCase) find(ctx context.Context, id int64) (*entity.SessionEvent, error) {
	event, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.NotFoundf("evento de sesión %d no encontrado", id)
	}
	return event, nil
}

func toSessionEventList(list []*entity.SessionEvent) dto.ListResponse[dto.SessionEventResponse] {
	items := make([]dto.SessionEventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toSessionEventResponse(e))
	}
	return dto.NewList(items)
}

func toSessionEventResponse(e *entity.SessionEvent) *dto.SessionEventResponse {
	return &dto.SessionEventResponse{ID: e.ID, UsuarioID: e.UserID, Tipo: e.Type, Timestamp: e.Timestamp}
}
