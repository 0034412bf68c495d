package scheduling

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group, guard echo.MiddlewareFunc) {
	api.GET("/appointments", h.List)

	write := api.Group("", guard)
	write.POST("/appointments", h.Create)
}

func (h *Handler) List(c echo.Context) error {
	day := ParseDayFilter(c.QueryParam("day"))
	views, err := h.svc.List(c.Request().Context(), day)
	if err != nil {
		return web.DatabaseError(err)
	}
	if views == nil {
		views = []AppointmentView{}
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateAppointmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		if web.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return web.DatabaseError(err)
	}
	return c.JSON(http.StatusCreated, a)
}
