package httpserver

import (
	"net/http"
	"testing"

	"github.com/pawmart/pawmart-server/internal/service"
)

func TestUpsertUser_MissingEmail(t *testing.T) {
	t.Parallel()

	h := &UserHTTP{Svc: &service.UserService{}}

	_, c := newJSONContext(t, http.MethodPost, "/api/users", map[string]any{
		"name": "Ada",
	})

	requireHTTPError(t, h.UpsertUser(c), http.StatusBadRequest)
}
