package message

import (
	"net/http"

	"github.com/colima-services/reference-api/api/rest/httperr"
	"github.com/colima-services/reference-api/api/rest/service/message"
	"github.com/labstack/echo/v4"
)

func (ct *Controller) Publish(c echo.Context) error {
	req := &message.PublishRequest{}

	if err := c.Bind(req); err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	// the queue may be named in the query string instead
	// of the request body
	if queue := c.QueryParam("queue"); queue != "" {
		req.Queue = queue
	}

	msg, err := message.Service(
		c.Request().Context(),
		ct.secrets,
		ct.publisher,
		ct.db,
	).Publish(req)
	if err != nil {
		return httperr.From(err)
	}

	return c.JSON(http.StatusAccepted, msg)
}
