package billing

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hospitalops/hospitalops/internal/platform/web"
	"github.com/hospitalops/hospitalops/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the billing endpoints. guard wraps write endpoints
// (no-op in development).
func (h *Handler) RegisterRoutes(api *echo.Group, guard echo.MiddlewareFunc) {
	api.GET("/billing", h.ListBills)
	api.GET("/billing/items", h.ListItems)

	write := api.Group("", guard)
	write.POST("/billing", h.CreateBill)
	write.POST("/billing/items", h.AddItem)
}

func (h *Handler) ListBills(c echo.Context) error {
	pg := pagination.FromContext(c)
	bills, total, err := h.svc.ListBills(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return web.DatabaseError(err)
	}
	if bills == nil {
		bills = []*Bill{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(bills, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateBill(c echo.Context) error {
	var in CreateBillInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	bill, err := h.svc.CreateBill(c.Request().Context(), in)
	if err != nil {
		if web.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return web.DatabaseError(err)
	}
	return c.JSON(http.StatusCreated, bill)
}

// ListItems returns the items of one bill. A missing billId is a caller
// error; a billId that matches no bill yields an empty list, not a 404.
func (h *Handler) ListItems(c echo.Context) error {
	raw := c.QueryParam("billId")
	if raw == "" || raw == "0" {
		return echo.NewHTTPError(http.StatusBadRequest, "billId is required")
	}
	billID, err := uuid.Parse(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid billId")
	}

	items, err := h.svc.ListItems(c.Request().Context(), billID)
	if err != nil {
		return web.DatabaseError(err)
	}
	if items == nil {
		items = []*BillItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// AddItemResponse is returned by POST /api/billing/items: the stored item
// plus the recomputed bill total.
type AddItemResponse struct {
	Item      *BillItem `json:"item"`
	BillTotal float64   `json:"bill_total"`
}

func (h *Handler) AddItem(c echo.Context) error {
	var in AddItemInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	item, total, err := h.svc.AddItem(c.Request().Context(), in)
	if err != nil {
		if web.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return web.DatabaseError(err)
	}
	return c.JSON(http.StatusCreated, AddItemResponse{Item: item, BillTotal: total})
}
