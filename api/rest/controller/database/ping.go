package database

import (
	"net/http"

	"github.com/colima-services/reference-api/api/rest/httperr"
	"github.com/colima-services/reference-api/api/rest/service/database"
	"github.com/labstack/echo/v4"
)

func (ct *Controller) Ping(c echo.Context) error {
	result, err := database.Service(c.Request().Context(), ct.secrets).Ping()
	if err != nil {
		return httperr.From(err)
	}

	return c.JSON(http.StatusOK, result)
}
