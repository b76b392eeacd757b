package invoicing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/pdf"
)

// ExportResult carries a rendered invoice PDF together with the HTTP
// metadata needed to serve it.
type ExportResult struct {
	Data        []byte
	FileName    string
	ContentType string
	Disposition string
}

// ExportService renders invoices to PDF documents
type ExportService struct {
	invoiceRepo invoicing.InvoiceRepository
	renderer    pdf.Renderer
	logger      *zap.Logger
}

// NewExportService creates a new ExportService
func NewExportService(invoiceRepo invoicing.InvoiceRepository, renderer pdf.Renderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		invoiceRepo: invoiceRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// ExportPDF renders the invoice identified by id to a PDF document.
// When download is true the result asks the browser to save the file,
// otherwise to display it inline. The file name is always
// Invoice_<number>.pdf.
func (s *ExportService) ExportPDF(ctx context.Context, id uuid.UUID, download bool) (*ExportResult, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := pdf.NewDocument(invoice)

	data, err := s.renderer.Render(ctx, doc)
	if err != nil {
		s.logger.Error("invoice PDF rendering failed",
			zap.String("invoice_id", id.String()),
			zap.String("number", invoice.Number),
			zap.Error(err))
		return nil, shared.NewDomainError("GENERATION_FAILED", "Failed to generate invoice PDF")
	}

	fileName := fmt.Sprintf("Invoice_%s.pdf", invoice.Number)
	mode := "inline"
	if download {
		mode = "attachment"
	}

	return &ExportResult{
		Data:        data,
		FileName:    fileName,
		ContentType: "application/pdf",
		Disposition: fmt.Sprintf("%s; filename=%q", mode, fileName),
	}, nil
}
