package token

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylofy/stylofy-backend-go/models"
)

const testSecret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	codec := NewCodec(testSecret)

	raw, err := codec.Issue("a@x.com", models.RoleUser)
	require.NoError(t, err)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.InDelta(t, time.Now().Add(TTL).Unix(), claims.ExpiresAt, 5)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewCodec("other-secret").Issue("a@x.com", models.RoleUser)
	require.NoError(t, err)

	_, err = NewCodec(testSecret).Verify(raw)
	assert.Error(t, err)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	codec := NewCodec(testSecret)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Verify(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	claims := &Claims{
		Email: "a@x.com",
		Role:  models.RoleUser,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewCodec(testSecret).Verify(raw)
	assert.Error(t, err)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	claims := &Claims{
		Email: "a@x.com",
		Role:  models.RoleAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewCodec(testSecret).Verify(raw)
	assert.Error(t, err)
}

func TestCookieFlags(t *testing.T) {
	cookie := Cookie("signed-value")

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "signed-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(TTL.Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestClearCookieExpires(t *testing.T) {
	cookie := ClearCookie()

	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}
