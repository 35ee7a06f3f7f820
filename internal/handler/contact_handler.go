package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/service"
)

type ContactHandler struct {
	svc      service.ContactService
	validate *validator.Validate
}

func NewContactHandler(svc service.ContactService, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{svc: svc, validate: validate}
}

func (h *ContactHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateInquiry)
	g.GET("", h.ListInquiries)
}

func (h *ContactHandler) CreateInquiry(c echo.Context) error {
	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to submit contact inquiry")
	}
	return c.JSON(http.StatusCreated, inquiry)
}

func (h *ContactHandler) ListInquiries(c echo.Context) error {
	inquiries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch contact inquiries")
	}
	return c.JSON(http.StatusOK, inquiries)
}
