package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID set by the RequestID middleware
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message, getRequestID(c)))
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse("NOT_FOUND", message, getRequestID(c)))
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, message, getRequestID(c)))
}

// BindingError reports a failed request binding. Validator errors are
// expanded into per-field details; anything else becomes a plain 400.
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]dto.ValidationDetail, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = dto.ValidationDetail{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			}
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			"Request validation failed", getRequestID(c), details))
		return
	}
	h.BadRequest(c, err.Error())
}

// HandleDomainError converts domain errors to HTTP responses
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(statusCode, dto.NewErrorResponse(domainErr.Code, domainErr.Message, getRequestID(c)))
		return
	}
	h.InternalError(c, "An unexpected error occurred")
}

// validationMessage builds a readable message for one validator failure
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "dive":
		return "contains an invalid entry"
	default:
		return "is invalid"
	}
}
