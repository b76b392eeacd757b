package invoicing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/pdf"
)

func TestExportServiceExportPDF(t *testing.T) {
	ctx := context.Background()
	company, customer := newTestParties(t)

	t.Run("renders inline by default", func(t *testing.T) {
		invoice := newStoredInvoice(t, company, customer)
		invoiceRepo := new(MockInvoiceRepository)
		renderer := new(MockRenderer)
		service := NewExportService(invoiceRepo, renderer, nil)

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		renderer.On("Render", ctx, mock.AnythingOfType("*pdf.Document")).
			Return([]byte("%PDF-1.4 fake"), nil)

		result, err := service.ExportPDF(ctx, invoice.ID, false)

		require.NoError(t, err)
		assert.Equal(t, "application/pdf", result.ContentType)
		assert.Equal(t, "Invoice_INV-001.pdf", result.FileName)
		assert.Equal(t, `inline; filename="Invoice_INV-001.pdf"`, result.Disposition)
		assert.NotEmpty(t, result.Data)
	})

	t.Run("uses attachment disposition for download", func(t *testing.T) {
		invoice := newStoredInvoice(t, company, customer)
		invoiceRepo := new(MockInvoiceRepository)
		renderer := new(MockRenderer)
		service := NewExportService(invoiceRepo, renderer, nil)

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		renderer.On("Render", ctx, mock.Anything).Return([]byte("%PDF-1.4 fake"), nil)

		result, err := service.ExportPDF(ctx, invoice.ID, true)

		require.NoError(t, err)
		assert.Equal(t, `attachment; filename="Invoice_INV-001.pdf"`, result.Disposition)
	})

	t.Run("passes computed totals to the renderer", func(t *testing.T) {
		invoice := newStoredInvoice(t, company, customer)
		invoiceRepo := new(MockInvoiceRepository)
		renderer := new(MockRenderer)
		service := NewExportService(invoiceRepo, renderer, nil)

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		renderer.On("Render", ctx, mock.MatchedBy(func(doc *pdf.Document) bool {
			return doc.Number == "INV-001" &&
				doc.Company.Name == "Acme Corp" &&
				doc.Customer.Name == "Jane Doe" &&
				len(doc.Lines) == 1 &&
				doc.Total.StringFixed(2) == "1500.00"
		})).Return([]byte("%PDF-1.4 fake"), nil)

		_, err := service.ExportPDF(ctx, invoice.ID, false)

		require.NoError(t, err)
		renderer.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		service := NewExportService(invoiceRepo, new(MockRenderer), nil)

		id := uuid.New()
		invoiceRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.ExportPDF(ctx, id, false)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("maps renderer failure to generation error", func(t *testing.T) {
		invoice := newStoredInvoice(t, company, customer)
		invoiceRepo := new(MockInvoiceRepository)
		renderer := new(MockRenderer)
		service := NewExportService(invoiceRepo, renderer, nil)

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		renderer.On("Render", ctx, mock.Anything).
			Return(nil, pdf.NewRenderError(pdf.ErrCodeRenderFailed, "renderer crashed", errors.New("boom")))

		_, err := service.ExportPDF(ctx, invoice.ID, false)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "GENERATION_FAILED", domainErr.Code)
	})
}
