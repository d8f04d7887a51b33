// Package token signs and verifies the credential carried by the auth cookie.
package token

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stylofy/stylofy-backend-go/models"
)

// CookieName is the cookie the credential travels in.
const CookieName = "token"

// TTL is the fixed credential validity window. There is no refresh; expiry
// forces a re-issue.
const TTL = 30 * 24 * time.Hour

type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.StandardClaims
}

// Codec issues and verifies HS256 credentials. The secret is injected at
// construction and never read from the environment here.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a credential for email carrying the role assigned at sign
// time. The embedded role is never refreshed afterwards; guards always
// re-check the persisted record.
func (c *Codec) Issue(email string, role models.Role) (string, error) {
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TTL).Unix(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify parses and checks a raw credential. It rejects bad signatures,
// malformed payloads, unexpected signing methods and expired tokens.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}

// Cookie wraps a signed credential in the auth cookie: not readable by
// scripts, encrypted transport only, not attached to cross-site navigations.
func Cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the auth cookie unconditionally.
func ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
