package secret

import (
	"net/http"

	"github.com/colima-services/reference-api/api/rest/httperr"
	"github.com/colima-services/reference-api/api/rest/service/secret"
	"github.com/labstack/echo/v4"
)

// FieldResponse defines the data returned when reading a
// single field of a secret bundle.
type FieldResponse struct {
	Service string `json:"service"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

func (ct *Controller) Field(c echo.Context) error {
	var (
		service = c.Param("service")
		key     = c.Param("key")
	)

	value, err := secret.Service(c.Request().Context(), ct.secrets).Field(service, key)
	if err != nil {
		return httperr.From(err)
	}

	return c.JSON(http.StatusOK, FieldResponse{
		Service: service,
		Key:     key,
		Value:   secret.MaskField(key, value),
	})
}
