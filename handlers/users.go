package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// defaultUserPage is the page size for the admin directory.
const defaultUserPage = 10

// GetUsers is the admin directory: each user with their order and product
// counts, built in one aggregation round trip.
func (h *Handler) GetUsers(c echo.Context) error {
	start, limit := pageParams(c, defaultUserPage)

	ctx, cancel := opCtx(c)
	defer cancel()

	summaries, err := h.users.ListSummaries(ctx, start, limit)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, summaries)
}

// ListUsers is the legacy unguarded dump; password hashes never serialize.
func (h *Handler) ListUsers(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	users, err := h.users.ListAll(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}
