package main

import (
	"errors"
	"net/http"

	"github.com/guildpeek/guildpeek/invites"

	"github.com/labstack/echo/v4"
)

func (srv *Server) HandleInviteLookup(c echo.Context) error {
	ctx := c.Request().Context()
	code := c.Param("code")

	inv, err := srv.invites.FetchInvite(ctx, code)
	if err != nil {
		inviteLookups.WithLabelValues("error").Inc()

		// an upstream status passes through; anything else means we
		// couldn't make sense of the upstream at all
		var te *invites.TransportError
		if errors.As(err, &te) && te.StatusCode != 0 {
			return echo.NewHTTPError(te.StatusCode, te.Status)
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	inviteLookups.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, inv)
}
