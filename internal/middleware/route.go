package middleware

import (
	"cmp"
	"slices"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// secretParams are route parameters that carry credentials.
var secretParams = []string{"secret"}

// route returns the matched route template for c.
func route(c echo.Context) string {
	return cmp.Or(c.Path(), unmatchedRoute)
}

// loggablePath returns uriPath unless the matched route carries a secret
// parameter, in which case only the template is safe to write out.
func loggablePath(c echo.Context, uriPath string) string {
	for _, name := range c.ParamNames() {
		if slices.Contains(secretParams, name) {
			return route(c)
		}
	}
	return uriPath
}
