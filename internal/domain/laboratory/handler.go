package laboratory

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
	api.GET("/laboratory", h.List)
}

func (h *Handler) List(c echo.Context) error {
	views, err := h.repo.List(c.Request().Context())
	if err != nil {
		return web.DatabaseError(err)
	}
	if views == nil {
		views = []TestView{}
	}
	return c.JSON(http.StatusOK, views)
}
