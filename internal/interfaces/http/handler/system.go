package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invoicing/backend/internal/interfaces/http/dto"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Ping() error
}

// SystemHandler handles health and system info endpoints
type SystemHandler struct {
	BaseHandler
	db        HealthChecker
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db HealthChecker) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers system routes on the API group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", h.Health)
		system.GET("/info", h.GetSystemInfo)
	}
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health handles GET /system/health
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Database: "ok"}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(resp))
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo handles GET /system/info
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Invoicing API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
