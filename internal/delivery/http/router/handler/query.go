package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryInt parses an integer query parameter, falling back on absence or junk.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
