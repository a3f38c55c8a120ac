package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRMRMR033/pos-api/internal/application/receipt"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "$0.00",
		"45":        "$45.00",
		"1234.5":    "$1,234.50",
		"1234567.5": "$1,234,567.50",
		"-30":       "-$30.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	day := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	doc := receipt.Document{
		StoreName: "Abarrotes Centro",
		Cashier:   "Ana",
		Ticket:    &entity.Ticket{ID: 1, UserID: 7, TicketNumber: 3, Date: day.Add(10 * time.Hour), Day: day},
		Lines: []receipt.Line{
			{
				TicketItem:  entity.TicketItem{Quantity: 2, UnitPrice: decimal.NewFromInt(15), Total: decimal.NewFromInt(30)},
				ProductName: "Pan",
				Barcode:     "7501000000001",
			},
		},
		Total: decimal.NewFromInt(30),
	}

	out, err := NewReceiptGenerator().GenerateReceiptPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = NewReceiptGenerator().GenerateReceiptPDF(context.Background(), receipt.Document{})
	assert.Error(t, err)
}
