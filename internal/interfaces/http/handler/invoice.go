package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinvoicing "github.com/invoicing/backend/internal/application/invoicing"
)

// InvoiceHandler handles invoice API endpoints including PDF export
type InvoiceHandler struct {
	BaseHandler
	invoiceService *appinvoicing.InvoiceService
	exportService  *appinvoicing.ExportService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *appinvoicing.InvoiceService, exportService *appinvoicing.ExportService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		exportService:  exportService,
	}
}

// RegisterRoutes registers invoice routes on the API group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.GetByID)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
		invoices.GET("/:id/pdf", h.ExportPDF)
	}
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req appinvoicing.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, invoice)
}

// List handles GET /invoices with search, status and pagination params
func (h *InvoiceHandler) List(c *gin.Context) {
	filter := appinvoicing.InvoiceListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// GetByID handles GET /invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Update handles PUT /invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req appinvoicing.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Delete handles DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ExportPDF handles GET /invoices/:id/pdf. The download query switches
// the Content-Disposition from inline to attachment.
func (h *InvoiceHandler) ExportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	download := false
	if raw := c.Query("download"); raw != "" {
		download, err = strconv.ParseBool(raw)
		if err != nil {
			h.BadRequest(c, "Invalid download flag")
			return
		}
	}

	result, err := h.exportService.ExportPDF(c.Request.Context(), id, download)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", result.Disposition)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
