package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root redirects the bare root to the API greeting.
func Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/api")
}

// Welcome greets clients hitting the API root.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to the REST API project!",
	})
}
