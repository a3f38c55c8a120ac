package receipt

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

// UseCase arma el comprobante de un ticket: encabezado, líneas y total general.
type UseCase struct {
	tickets   repository.TicketRepository
	items     repository.TicketItemRepository
	products  repository.ProductRepository
	users     repository.UserRepository
	generator Generator
	storeName string
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	tickets repository.TicketRepository,
	items repository.TicketItemRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	generator Generator,
	storeName string,
) *UseCase {
	return &UseCase{
		tickets:   tickets,
		items:     items,
		products:  products,
		users:     users,
		generator: generator,
		storeName: storeName,
	}
}

// Build reúne los datos del ticket. El total general es la suma de los totales persistidos.
func (uc *UseCase) Build(ctx context.Context, ticketID int64) (*Document, error) {
	ticket, err := uc.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("receipt: obtener ticket: %w", err)
	}
	if ticket == nil {
		return nil, domain.NotFoundf("ticket %d no encontrado", ticketID)
	}

	raw, err := uc.items.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("receipt: obtener líneas: %w", err)
	}

	doc := &Document{StoreName: uc.storeName, Ticket: ticket, Total: decimal.Zero}
	doc.Cashier = fmt.Sprintf("Usuario %d", ticket.UserID) // fallback
	if user, uErr := uc.users.GetByID(ctx, ticket.UserID); uErr == nil && user != nil {
		doc.Cashier = user.FullName
	}

	doc.Lines = make([]Line, 0, len(raw))
	for _, it := range raw {
		line := Line{TicketItem: *it, ProductName: fmt.Sprintf("Producto %d", it.ProductID)}
		if p, pErr := uc.products.GetByID(ctx, it.ProductID); pErr == nil && p != nil {
			line.ProductName = p.Name
			line.Barcode = p.Barcode
		}
		doc.Lines = append(doc.Lines, line)
		doc.Total = doc.Total.Add(it.Total)
	}
	return doc, nil
}

// Download genera el PDF del comprobante y su nombre de archivo.
func (uc *UseCase) Download(ctx context.Context, ticketID int64) (pdf []byte, filename string, err error) {
	doc, err := uc.Build(ctx, ticketID)
	if err != nil {
		return nil, "", err
	}
	pdf, err = uc.generator.GenerateReceiptPDF(ctx, *doc)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("ticket_%d_%s_%03d.pdf", doc.Ticket.UserID, doc.Ticket.Day.Format("20060102"), doc.Ticket.TicketNumber)
	return pdf, filename, nil
}
