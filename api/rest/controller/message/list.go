package message

import (
	"net/http"
	"strconv"

	"github.com/colima-services/reference-api/api/rest/httperr"
	"github.com/colima-services/reference-api/api/rest/service/message"
	"github.com/labstack/echo/v4"
)

func parseListRequest(c echo.Context) (*message.ListRequest, error) {
	req := &message.ListRequest{Queue: c.QueryParam("queue")}

	if limit := c.QueryParam("limit"); limit != "" {
		value, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = value
	}

	return req, nil
}

func (ct *Controller) List(c echo.Context) error {
	req, err := parseListRequest(c)
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	messages, err := message.Service(
		c.Request().Context(),
		ct.secrets,
		ct.publisher,
		ct.db,
	).List(req)
	if err != nil {
		return httperr.From(err)
	}

	return c.JSON(http.StatusOK, messages)
}
