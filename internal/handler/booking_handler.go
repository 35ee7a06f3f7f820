package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/planetnakshatra/api/internal/dto"
	"github.com/planetnakshatra/api/internal/service"
)

type BookingHandler struct {
	svc      service.BookingService
	validate *validator.Validate
}

func NewBookingHandler(svc service.BookingService, validate *validator.Validate) *BookingHandler {
	return &BookingHandler{svc: svc, validate: validate}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	// availability must be registered before the :id route
	g.GET("/availability", h.GetAvailability)
	g.GET("/:id", h.GetBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrPastDate):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSlotTaken), errors.Is(err, service.ErrSlotBusy):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetAvailability(c echo.Context) error {
	date := c.QueryParam("date")
	serviceID := c.QueryParam("serviceId")

	availability, err := h.svc.Availability(c.Request().Context(), date, serviceID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, availability)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, booking)
}
