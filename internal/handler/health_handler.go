package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/planetnakshatra/api/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	started time.Time
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// Check always answers 200; a broken database turns the payload degraded
// instead of failing the probe.
func (h *HealthHandler) Check(c echo.Context) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
		Uptime:    time.Since(h.started).Seconds(),
	}

	if err := h.db.WithContext(c.Request().Context()).Exec("SELECT 1").Error; err != nil {
		resp.Status = "degraded"
		resp.Database = "disconnected"
		resp.Message = "Server is running but database is not available. API endpoints may not work correctly."
	}

	return c.JSON(http.StatusOK, resp)
}
