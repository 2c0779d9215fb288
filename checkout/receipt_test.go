package checkout

import (
	"testing"
	"time"

	"gadgetry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceiptProducesPDF(t *testing.T) {
	order := models.Order{
		OrderID:   "ORD0123456789",
		Total:     7200,
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Items: []models.CartItem{
			{ID: "cart_1", ProductID: "1", ProductName: "Wireless Headphones", Price: 3000, Qty: 2},
			{ID: "cart_2", ProductID: "2", ProductName: "Smart Watch", Price: 1200, Qty: 1},
		},
		CustomerName:  "Al",
		CustomerEmail: "al@example.com",
	}

	pdfBytes, err := renderReceipt(order)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderReceiptEmptyItemList(t *testing.T) {
	// checkout validation forbids this, but the renderer shouldn't care
	order := models.Order{
		OrderID:       "ORD0000000000",
		Timestamp:     time.Now().UTC(),
		CustomerName:  "Al",
		CustomerEmail: "al@example.com",
	}

	pdfBytes, err := renderReceipt(order)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
