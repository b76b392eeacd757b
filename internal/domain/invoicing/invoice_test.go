package invoicing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	companyID := uuid.New()
	customerID := uuid.New()
	due := time.Now().AddDate(0, 1, 0)

	t.Run("creates draft invoice successfully", func(t *testing.T) {
		inv, err := NewInvoice("INV-001", companyID, customerID, due)

		require.NoError(t, err)
		assert.Equal(t, "INV-001", inv.Number)
		assert.Equal(t, companyID, inv.CompanyID)
		assert.Equal(t, customerID, inv.CustomerID)
		assert.Equal(t, InvoiceStatusDraft, inv.Status)
		assert.True(t, inv.DiscountAmount.IsZero())
		assert.True(t, inv.ShippingAmount.IsZero())
		assert.Empty(t, inv.Items)
		assert.Equal(t, 0, inv.DateCreated.Hour())
	})

	t.Run("fails with empty number", func(t *testing.T) {
		inv, err := NewInvoice("", companyID, customerID, due)

		assert.Error(t, err)
		assert.Nil(t, inv)
	})

	t.Run("fails without company", func(t *testing.T) {
		inv, err := NewInvoice("INV-002", uuid.Nil, customerID, due)

		assert.Error(t, err)
		assert.Nil(t, inv)
	})

	t.Run("fails without due date", func(t *testing.T) {
		inv, err := NewInvoice("INV-003", companyID, customerID, time.Time{})

		assert.Error(t, err)
		assert.Nil(t, inv)
	})
}

func TestNewInvoiceItem(t *testing.T) {
	t.Run("creates item successfully", func(t *testing.T) {
		item, err := NewInvoiceItem("Consulting", 10, decimal.RequireFromString("150.00"))

		require.NoError(t, err)
		assert.Equal(t, "Consulting", item.Description)
		assert.Equal(t, 10, item.Quantity)
		assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewInvoiceItem("Consulting", 0, decimal.RequireFromString("150.00"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1")
	})

	t.Run("fails with zero unit price", func(t *testing.T) {
		_, err := NewInvoiceItem("Consulting", 1, decimal.Zero)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "greater than zero")
	})

	t.Run("fails with negative unit price", func(t *testing.T) {
		_, err := NewInvoiceItem("Consulting", 1, decimal.RequireFromString("-0.01"))

		assert.Error(t, err)
	})

	t.Run("fails with empty description", func(t *testing.T) {
		_, err := NewInvoiceItem("", 1, decimal.RequireFromString("1.00"))

		assert.Error(t, err)
	})
}

func TestInvoiceItemLineTotal(t *testing.T) {
	item, err := NewInvoiceItem("Widgets", 10, decimal.RequireFromString("150.00"))
	require.NoError(t, err)

	assert.Equal(t, "1500.00", item.LineTotal().StringFixed(2))
}

func TestInvoiceTotals(t *testing.T) {
	companyID := uuid.New()
	customerID := uuid.New()
	due := time.Now().AddDate(0, 0, 30)

	newInvoice := func(t *testing.T) *Invoice {
		t.Helper()
		inv, err := NewInvoice("INV-100", companyID, customerID, due)
		require.NoError(t, err)
		return inv
	}

	addItem := func(t *testing.T, inv *Invoice, qty int, price string) {
		t.Helper()
		item, err := NewInvoiceItem("Item", qty, decimal.RequireFromString(price))
		require.NoError(t, err)
		inv.AddItem(item)
	}

	t.Run("empty invoice has zero subtotal", func(t *testing.T) {
		inv := newInvoice(t)

		totals := inv.Totals()
		assert.Equal(t, "0.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "0.00", totals.Total.StringFixed(2))
	})

	t.Run("sums line totals exactly", func(t *testing.T) {
		inv := newInvoice(t)
		addItem(t, inv, 10, "150.00")
		addItem(t, inv, 5, "200.00")

		totals := inv.Totals()
		assert.Equal(t, "2500.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "2500.00", totals.Total.StringFixed(2))
	})

	t.Run("applies discount and shipping", func(t *testing.T) {
		inv := newInvoice(t)
		addItem(t, inv, 1, "100.00")
		require.NoError(t, inv.SetAmounts(
			decimal.RequireFromString("10.00"),
			decimal.RequireFromString("5.00"),
		))

		totals := inv.Totals()
		assert.Equal(t, "100.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "10.00", totals.Discount.StringFixed(2))
		assert.Equal(t, "5.00", totals.Shipping.StringFixed(2))
		assert.Equal(t, "95.00", totals.Total.StringFixed(2))
	})

	t.Run("total may go negative when discount exceeds subtotal", func(t *testing.T) {
		inv := newInvoice(t)
		addItem(t, inv, 1, "10.00")
		require.NoError(t, inv.SetAmounts(decimal.RequireFromString("25.00"), decimal.Zero))

		totals := inv.Totals()
		assert.Equal(t, "-15.00", totals.Total.StringFixed(2))
	})

	t.Run("is idempotent", func(t *testing.T) {
		inv := newInvoice(t)
		addItem(t, inv, 3, "19.99")
		require.NoError(t, inv.SetAmounts(decimal.RequireFromString("2.50"), decimal.RequireFromString("4.00")))

		first := inv.Totals()
		second := inv.Totals()
		assert.True(t, first.Subtotal.Equal(second.Subtotal))
		assert.True(t, first.Total.Equal(second.Total))
		assert.Equal(t, "61.47", first.Total.StringFixed(2))
	})
}

func TestInvoiceSetAmounts(t *testing.T) {
	inv, err := NewInvoice("INV-200", uuid.New(), uuid.New(), time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)

	t.Run("rejects negative discount", func(t *testing.T) {
		err := inv.SetAmounts(decimal.RequireFromString("-1.00"), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative shipping", func(t *testing.T) {
		err := inv.SetAmounts(decimal.Zero, decimal.RequireFromString("-1.00"))
		assert.Error(t, err)
	})
}

func TestInvoiceSetStatus(t *testing.T) {
	inv, err := NewInvoice("INV-300", uuid.New(), uuid.New(), time.Now().AddDate(0, 0, 14))
	require.NoError(t, err)

	t.Run("accepts known statuses", func(t *testing.T) {
		for _, status := range []InvoiceStatus{InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled, InvoiceStatusDraft} {
			require.NoError(t, inv.SetStatus(status))
			assert.Equal(t, status, inv.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := inv.SetStatus("archived")
		assert.Error(t, err)
	})
}

func TestInvoiceReplaceItems(t *testing.T) {
	inv, err := NewInvoice("INV-400", uuid.New(), uuid.New(), time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)

	first, err := NewInvoiceItem("First", 1, decimal.RequireFromString("1.00"))
	require.NoError(t, err)
	second, err := NewInvoiceItem("Second", 2, decimal.RequireFromString("2.00"))
	require.NoError(t, err)

	inv.ReplaceItems([]InvoiceItem{first, second})

	require.Len(t, inv.Items, 2)
	assert.Equal(t, 0, inv.Items[0].Position)
	assert.Equal(t, 1, inv.Items[1].Position)
	assert.Equal(t, inv.ID, inv.Items[0].InvoiceID)
	assert.Equal(t, "First", inv.Items[0].Description)

	inv.ReplaceItems([]InvoiceItem{second})
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 0, inv.Items[0].Position)
	assert.Equal(t, "Second", inv.Items[0].Description)
}
