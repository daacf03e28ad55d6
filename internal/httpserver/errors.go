package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawmart/pawmart-server/internal/service"
)

// unavailable reports store-connectivity failures that map to 503 rather
// than a generic 500.
func unavailable(err error) bool {
	return errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}

// detail strips the sentinel prefix ("validation: ...") from a wrapped
// service error, leaving the human-readable part.
func detail(err error) string {
	msg := err.Error()
	if _, rest, found := strings.Cut(msg, ": "); found {
		return rest
	}
	return msg
}

func serviceError(l *slog.Logger, event string, err error, dev bool) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", 400, "reason", detail(err), "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, detail(err))
	case errors.Is(err, service.ErrForbidden):
		l.Warn(event, "status", 403, "reason", detail(err), "error", err)
		return echo.NewHTTPError(http.StatusForbidden, "authorization denied: "+detail(err))
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "reason", detail(err), "error", err)
		return echo.NewHTTPError(http.StatusNotFound, detail(err)+" not found")
	case unavailable(err):
		l.Error(event, "status", 503, "reason", "database unavailable", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database connection unavailable")
	default:
		l.Error(event, "status", 500, "reason", "internal error", "error", err)
		if dev {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
