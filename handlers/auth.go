package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/stylofy/stylofy-backend-go/models"
	"github.com/stylofy/stylofy-backend-go/store"
	"github.com/stylofy/stylofy-backend-go/token"
)

type signTokenRequest struct {
	Email string `json:"email"`
}

// SignToken issues the credential cookie for the given email. The embedded
// role is the persisted one at sign time ("user" when no record exists yet);
// guards re-check the persisted record on every request regardless.
func (h *Handler) SignToken(c echo.Context) error {
	var req signTokenRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request format")
	}
	if req.Email == "" {
		return message(c, http.StatusBadRequest, "Email is required")
	}
	email := strings.ToLower(req.Email)

	ctx, cancel := opCtx(c)
	defer cancel()

	role := models.RoleUser
	user, err := h.users.FindByEmail(ctx, email)
	if err == nil {
		role = user.Role
	} else if err != store.ErrNotFound {
		return serverError(c, err)
	}

	signed, err := h.codec.Issue(email, role)
	if err != nil {
		return serverError(c, err)
	}

	c.SetCookie(token.Cookie(signed))
	return message(c, http.StatusOK, "signed token successfully")
}

// SignOut clears the credential cookie unconditionally.
func (h *Handler) SignOut(c echo.Context) error {
	c.SetCookie(token.ClearCookie())
	return message(c, http.StatusOK, "Signed out successfully")
}

type signUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	Provider string `json:"provider"`
	Password string `json:"password"`
}

// SignUser is the idempotent create-or-fetch: the first sign-in with an
// email creates the record, every later one returns it unchanged. New users
// always start with the user role.
func (h *Handler) SignUser(c echo.Context) error {
	var req signUserRequest
	if err := c.Bind(&req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request format")
	}
	if req.Email == "" {
		return message(c, http.StatusBadRequest, "Email is required")
	}
	if req.Name == "" || req.Provider == "" {
		return message(c, http.StatusBadRequest, "Name and provider are required")
	}

	user := models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Image:    req.Image,
		Provider: req.Provider,
		Role:     models.RoleUser,
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return serverError(c, err)
		}
		user.Password = string(hashed)
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	saved, created, err := h.users.SignUser(ctx, user)
	if err != nil {
		return serverError(c, err)
	}

	if created {
		return c.JSON(http.StatusCreated, saved)
	}
	return c.JSON(http.StatusOK, saved)
}
