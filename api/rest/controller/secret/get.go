package secret

import (
	"net/http"

	"github.com/colima-services/reference-api/api/rest/httperr"
	"github.com/colima-services/reference-api/api/rest/service/secret"
	"github.com/labstack/echo/v4"
)

// GetResponse defines the data returned when reading a
// single secret bundle. Sensitive fields are masked.
type GetResponse struct {
	Service string         `json:"service"`
	Data    map[string]any `json:"data"`
	Note    string         `json:"note"`
}

func (ct *Controller) Get(c echo.Context) error {
	service := c.Param("service")

	bundle, err := secret.Service(c.Request().Context(), ct.secrets).Bundle(service)
	if err != nil {
		return httperr.From(err)
	}

	return c.JSON(http.StatusOK, GetResponse{
		Service: service,
		Data:    secret.Mask(bundle),
		Note:    "sensitive values are masked",
	})
}
