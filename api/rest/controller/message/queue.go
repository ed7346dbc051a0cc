package message

import (
	"net/http"

	"github.com/colima-services/reference-api/api/rest/httperr"
	"github.com/colima-services/reference-api/api/rest/service/message"
	"github.com/labstack/echo/v4"
)

func (ct *Controller) Queue(c echo.Context) error {
	info, err := message.Service(
		c.Request().Context(),
		ct.secrets,
		ct.publisher,
		ct.db,
	).QueueInfo(c.Param("name"))
	if err != nil {
		return httperr.From(err)
	}

	return c.JSON(http.StatusOK, info)
}
