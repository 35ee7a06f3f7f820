package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/service"
)

type ServiceHandler struct {
	svc      service.CatalogService
	validate *validator.Validate
}

func NewServiceHandler(svc service.CatalogService, validate *validator.Validate) *ServiceHandler {
	return &ServiceHandler{svc: svc, validate: validate}
}

func (h *ServiceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListServices)
	g.GET("/:id", h.GetService)
	g.POST("", h.CreateService)
	g.PATCH("/:id", h.UpdateService)
	g.DELETE("/:id", h.DeleteService)
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List(c.Request().Context()))
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	svc, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	var req dto.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.svc.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	svc, err := h.svc.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, svc)
}
