package pharmacy

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
	api.GET("/pharmacy", h.List)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return web.DatabaseError(err)
	}
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, it.View())
	}
	return c.JSON(http.StatusOK, views)
}
