package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawmart/pawmart-server/internal/service"
	"github.com/pawmart/pawmart-server/internal/transport"
	"github.com/pawmart/pawmart-server/pkg/logging"
)

type UserHTTP struct {
	Svc *service.UserService
	Dev bool
}

func (h *UserHTTP) UpsertUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.upsert_user")

	var req transport.UpsertUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("upsert_user_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Upsert(ctx, req)
	if err != nil {
		return serviceError(l, "upsert_user_failed", err, h.Dev)
	}

	l.Info("upsert_user_success", "email", req.Email)
	return c.JSON(http.StatusOK, res)
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	users, err := h.Svc.All(ctx)
	if err != nil {
		return serviceError(l, "get_users_failed", err, h.Dev)
	}

	return c.JSON(http.StatusOK, users)
}
