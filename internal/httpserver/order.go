package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawmart/pawmart-server/internal/models"
	"github.com/pawmart/pawmart-server/internal/service"
	"github.com/pawmart/pawmart-server/internal/transport"
	"github.com/pawmart/pawmart-server/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
	Dev bool
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	created, err := h.Svc.Create(ctx, transport.OrderFromBody(body))
	if err != nil {
		return serviceError(l, "create_order_failed", err, h.Dev)
	}

	l.Info("create_order_success", "id", created.ID.Hex())
	return c.JSON(http.StatusCreated, created)
}

func (h *OrderHTTP) CreateOrdersBatch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_batch")

	var bodies []map[string]any
	if err := c.Bind(&bodies); err != nil {
		l.Warn("create_batch_failed", "status", 400, "reason", "expected an array of orders", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "expected an array of orders")
	}

	items := make([]models.Order, len(bodies))
	for i, body := range bodies {
		items[i] = transport.OrderFromBody(body)
	}

	count, ids, err := h.Svc.CreateBatch(ctx, items)
	if err != nil {
		return serviceError(l, "create_batch_failed", err, h.Dev)
	}

	l.Info("create_batch_success", "inserted", count)
	return c.JSON(http.StatusCreated, echo.Map{
		"insertedCount": count,
		"insertedIds":   ids,
	})
}

func (h *OrderHTTP) GetMyOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_my_orders")

	orders, err := h.Svc.ByOwner(ctx, c.QueryParam("email"))
	if err != nil {
		return serviceError(l, "get_my_orders_failed", err, h.Dev)
	}

	l.Info("get_my_orders_success", "count", len(orders))
	return c.JSON(http.StatusOK, orders)
}
