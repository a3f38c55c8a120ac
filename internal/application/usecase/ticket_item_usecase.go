package usecase

import (
	"context"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
	"github.com/MRMRMR033/pos-api/internal/domain/sales"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

// TicketItemUseCase maneja las líneas de ticket. El total se persiste y siempre es cantidad × precio.
type TicketItemUseCase struct {
	repo     repository.TicketItemRepository
	tickets  repository.TicketRepository
	products repository.ProductRepository
	validate *validation.Validator
	now      Clock
}

// NewTicketItemUseCase construye el caso de uso.
func NewTicketItemUseCase(repo repository.TicketItemRepository, tickets repository.TicketRepository, products repository.ProductRepository, v *validation.Validator) *TicketItemUseCase {
	return &TicketItemUseCase{repo: repo, tickets: tickets, products: products, validate: v, now: time.Now}
}

// Create agrega una línea calculando su total.
func (uc *TicketItemUseCase) Create(ctx context.Context, in dto.CreateTicketItemRequest) (*dto.TicketItemResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	if err := uc.checkRefs(ctx, &in.TicketID, &in.ProductoID); err != nil {
		return nil, err
	}
	now := uc.now()
	item := &entity.TicketItem{
		TicketID:  in.TicketID,
		ProductID: in.ProductoID,
		Quantity:  in.Cantidad,
		UnitPrice: in.PrecioUnitario,
		Total:     sales.LineTotal(in.Cantidad, in.PrecioUnitario),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, persistError("no se pudo crear la línea de ticket", err)
	}
	return toTicketItemResponse(item), nil
}

// GetByID obtiene una línea.
func (uc *TicketItemUseCase) GetByID(ctx context.Context, id int64) (*dto.TicketItemResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTicketItemResponse(item), nil
}

// List lista todas las líneas.
func (uc *TicketItemUseCase) List(ctx context.Context) (dto.ListResponse[dto.TicketItemResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.TicketItemResponse]{}, err
	}
	return toTicketItemList(list), nil
}

// ListByTicket lista las líneas de un ticket existente.
func (uc *TicketItemUseCase) ListByTicket(ctx context.Context, ticketID int64) (dto.ListResponse[dto.TicketItemResponse], error) {
	if err := uc.checkRefs(ctx, &ticketID, nil); err != nil {
		return dto.ListResponse[dto.TicketItemResponse]{}, err
	}
	list, err := uc.repo.ListByTicket(ctx, ticketID)
	if err != nil {
		return dto.ListResponse[dto.TicketItemResponse]{}, err
	}
	return toTicketItemList(list), nil
}

// Update aplica el parche. Si cambia cantidad o precio, el total se recalcula con el valor nuevo
// donde venga y el almacenado donde no.
func (uc *TicketItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateTicketItemRequest) (*dto.TicketItemResponse, error) {
	if err := validate(uc.validate, in); err != nil {
		return nil, err
	}
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkRefs(ctx, in.TicketID, in.ProductoID); err != nil {
		return nil, err
	}
	if in.TicketID != nil {
		item.TicketID = *in.TicketID
	}
	if in.ProductoID != nil {
		item.ProductID = *in.ProductoID
	}
	qty, price, total, changed := sales.RecomputeLine(item.Quantity, item.UnitPrice, in.Cantidad, in.PrecioUnitario)
	if changed {
		item.Quantity, item.UnitPrice, item.Total = qty, price, total
	}
	item.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, persistError("no se pudo actualizar la línea de ticket", err)
	}
	return toTicketItemResponse(item), nil
}

// Delete elimina una línea.
func (uc *TicketItemUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *TicketItemUseCase) find(ctx context.Context, id int64) (*entity.TicketItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("línea de ticket %d no encontrada", id)
	}
	return item, nil
}

// checkRefs verifica que ticket y producto referenciados existan (nil = no se verifica).
func (uc *TicketItemUseCase) checkRefs(ctx context.Context, ticketID, productID *int64) error {
	if ticketID != nil {
		t, err := uc.tickets.GetByID(ctx, *ticketID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.NotFoundf("ticket %d no encontrado", *ticketID)
		}
	}
	if productID != nil {
		p, err := uc.products.GetByID(ctx, *productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NotFoundf("producto %d no encontrado", *productID)
		}
	}
	return nil
}

func toTicketItemList(list []*entity.TicketItem) dto.ListResponse[dto.TicketItemResponse] {
	items := make([]dto.TicketItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toTicketItemResponse(it))
	}
	return dto.NewList(items)
}

func toTicketItemResponse(it *entity.TicketItem) *dto.TicketItemResponse {
	return &dto.TicketItemResponse{
		ID:             it.ID,
		TicketID:       it.TicketID,
		ProductoID:     it.ProductID,
		Cantidad:       it.Quantity,
		PrecioUnitario: it.UnitPrice,
		Total:          it.Total,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}
