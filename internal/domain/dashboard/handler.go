package dashboard

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
	api.GET("/stats", h.GetStats)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.repo.Stats(c.Request().Context())
	if err != nil {
		return web.DatabaseError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
