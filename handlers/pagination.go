package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageParams reads start/limit from the query string. Absent or non-numeric
// values fall back to 0 and defaultLimit; a negative start clamps to 0 and a
// non-positive limit clamps to the default.
func pageParams(c echo.Context, defaultLimit int64) (start, limit int64) {
	start = parsePage(c.QueryParam("start"), 0)
	limit = parsePage(c.QueryParam("limit"), defaultLimit)

	if start < 0 {
		start = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return start, limit
}

func parsePage(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
