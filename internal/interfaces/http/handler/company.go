package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appinvoicing "github.com/invoicing/backend/internal/application/invoicing"
)

// CompanyHandler handles company API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *appinvoicing.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *appinvoicing.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// RegisterRoutes registers company routes on the API group
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.POST("", h.Create)
		companies.GET("", h.List)
		companies.GET("/:id", h.GetByID)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req appinvoicing.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, company)
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	filter := appinvoicing.PartyListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	companies, total, err := h.companyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, companies, total, filter.Page, filter.PageSize)
}

// GetByID handles GET /companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Update handles PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req appinvoicing.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// Delete handles DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
