package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospitalops/hospitalops/internal/platform/web"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/departments", h.ListDepartments)
	api.GET("/beds", h.ListBeds)
}

func (h *Handler) ListDepartments(c echo.Context) error {
	views, err := h.repo.ListDepartments(c.Request().Context())
	if err != nil {
		return web.DatabaseError(err)
	}
	if views == nil {
		views = []DepartmentView{}
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) ListBeds(c echo.Context) error {
	views, err := h.repo.ListBeds(c.Request().Context())
	if err != nil {
		return web.DatabaseError(err)
	}
	if views == nil {
		views = []BedView{}
	}
	return c.JSON(http.StatusOK, views)
}
