package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageParams reads limit and offset query parameters. Missing or malformed
// values are left zero for the use case to default.
func pageParams(c echo.Context) (limit, offset int) {
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	return limit, offset
}
