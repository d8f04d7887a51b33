package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stylofy/stylofy-backend-go/models"
	"github.com/stylofy/stylofy-backend-go/store"
	"github.com/stylofy/stylofy-backend-go/token"
)

// CtxUserKey is the echo context key holding the persisted models.User of
// the authenticated requester.
const CtxUserKey = "user"

// IdentityStore resolves a credential's email to the persisted user record.
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// Guard gates routes on (request credential, persisted identity). Every
// request re-verifies the token and re-fetches the user, so a role change
// takes effect on the next request even though issued credentials keep
// their original role claim.
type Guard struct {
	codec *token.Codec
	users IdentityStore
}

func NewGuard(codec *token.Codec, users IdentityStore) *Guard {
	return &Guard{codec: codec, users: users}
}

// Authenticated admits any requester with a valid credential whose persisted
// record exists and carries a known role. The credential's role claim is not
// trusted for anything beyond existence here.
func (g *Guard) Authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, user, ok, err := g.resolve(c)
		if !ok {
			return err
		}

		if !models.ValidRole(user.Role) {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden"})
		}

		c.Set(CtxUserKey, user)
		return next(c)
	}
}

// AdminOnly requires the credential's claimed role and the persisted role to
// both be admin. The double check rejects a forged claim as well as a
// credential issued before the role changed.
func (g *Guard) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return g.roleOnly(models.RoleAdmin, next)
}

// SellerOnly is the seller counterpart of AdminOnly.
func (g *Guard) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return g.roleOnly(models.RoleSeller, next)
}

func (g *Guard) roleOnly(role models.Role, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, user, ok, err := g.resolve(c)
		if !ok {
			return err
		}

		if claims.Role != role || user.Role != role {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden"})
		}

		c.Set(CtxUserKey, user)
		return next(c)
	}
}

// resolve runs the shared first half of every policy: cookie present, token
// valid, identity persisted. A missing identity is an authorization failure,
// never a dereference further down. When ok is false the rejection has
// already been written and the returned error is to be handed back to echo.
func (g *Guard) resolve(c echo.Context) (*token.Claims, models.User, bool, error) {
	cookie, err := c.Cookie(token.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, models.User{}, false, c.JSON(http.StatusUnauthorized, map[string]string{"message": "No token provided"})
	}

	claims, err := g.codec.Verify(cookie.Value)
	if err != nil {
		return nil, models.User{}, false, c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
	}

	user, err := g.users.FindByEmail(c.Request().Context(), claims.Email)
	if err == store.ErrNotFound {
		return nil, models.User{}, false, c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden"})
	}
	if err != nil {
		return nil, models.User{}, false, c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server Error"})
	}

	return claims, user, true, nil
}
