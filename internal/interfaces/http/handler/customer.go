package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinvoicing "github.com/invoicing/backend/internal/application/invoicing"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *appinvoicing.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *appinvoicing.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterRoutes registers customer routes on the API group
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.GetByID)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req appinvoicing.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	filter := appinvoicing.PartyListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	customers, total, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, customers, total, filter.Page, filter.PageSize)
}

// GetByID handles GET /customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req appinvoicing.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
