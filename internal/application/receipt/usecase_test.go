package receipt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRMRMR033/pos-api/internal/application/receipt"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/domain/repository"
)

type stubTickets struct {
	repository.TicketRepository
	byID map[int64]*entity.Ticket
}

func (s stubTickets) GetByID(_ context.Context, id int64) (*entity.Ticket, error) {
	return s.byID[id], nil
}

type stubItems struct {
	repository.TicketItemRepository
	byTicket map[int64][]*entity.TicketItem
}

func (s stubItems) ListByTicket(_ context.Context, ticketID int64) ([]*entity.TicketItem, error) {
	return s.byTicket[ticketID], nil
}

type stubProducts struct {
	repository.ProductRepository
	byID map[int64]*entity.Product
}

func (s stubProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return s.byID[id], nil
}

type stubUsers struct {
	repository.UserRepository
	byID map[int64]*entity.User
}

func (s stubUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return s.byID[id], nil
}

type captureGenerator struct {
	got receipt.Document
	err error
}

func (g *captureGenerator) GenerateReceiptPDF(_ context.Context, doc receipt.Document) ([]byte, error) {
	g.got = doc
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3"), nil
}

func fixture(gen receipt.Generator) *receipt.UseCase {
	day := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	tickets := stubTickets{byID: map[int64]*entity.Ticket{
		10: {ID: 10, UserID: 7, TicketNumber: 4, Date: day.Add(9 * time.Hour), Day: day},
	}}
	items := stubItems{byTicket: map[int64][]*entity.TicketItem{
		10: {
			{ID: 1, TicketID: 10, ProductID: 100, Quantity: 2, UnitPrice: decimal.RequireFromString("15.00"), Total: decimal.RequireFromString("30.00")},
			{ID: 2, TicketID: 10, ProductID: 999, Quantity: 3, UnitPrice: decimal.RequireFromString("15.00"), Total: decimal.RequireFromString("45.00")},
		},
	}}
	products := stubProducts{byID: map[int64]*entity.Product{100: {ID: 100, Name: "Pan", Barcode: "750100"}}}
	users := stubUsers{byID: map[int64]*entity.User{7: {ID: 7, FullName: "Ana"}}}
	return receipt.NewUseCase(tickets, items, products, users, gen, "Abarrotes Centro")
}

func TestBuild_SumaTotalesPersistidos(t *testing.T) {
	uc := fixture(&captureGenerator{})

	doc, err := uc.Build(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Ana", doc.Cashier)
	assert.Equal(t, "Abarrotes Centro", doc.StoreName)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "Pan", doc.Lines[0].ProductName)
	assert.Equal(t, "Producto 999", doc.Lines[1].ProductName, "producto borrado usa un nombre de respaldo")
	assert.True(t, doc.Total.Equal(decimal.RequireFromString("75.00")))
}

func TestBuild_TicketInexistente(t *testing.T) {
	_, err := fixture(&captureGenerator{}).Build(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownload(t *testing.T) {
	gen := &captureGenerator{}
	pdf, name, err := fixture(gen).Download(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
	assert.Equal(t, "ticket_7_20250608_004.pdf", name)
	assert.Equal(t, 4, gen.got.Ticket.TicketNumber)

	boom := errors.New("boom")
	_, _, err = fixture(&captureGenerator{err: boom}).Download(context.Background(), 10)
	assert.ErrorIs(t, err, boom)
}
