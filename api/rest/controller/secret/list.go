package secret

import (
	"net/http"

	"github.com/colima-services/reference-api/api/rest/httperr"
	"github.com/colima-services/reference-api/api/rest/service/secret"
	"github.com/labstack/echo/v4"
)

// ListResponse defines the data returned when listing the
// names of the secrets under the configured mount.
type ListResponse struct {
	Secrets []string `json:"secrets"`
	Count   int      `json:"count"`
}

func (ct *Controller) List(c echo.Context) error {
	names, err := secret.Service(c.Request().Context(), ct.secrets).Names()
	if err != nil {
		return httperr.From(err)
	}

	return c.JSON(http.StatusOK, ListResponse{
		Secrets: names,
		Count:   len(names),
	})
}
