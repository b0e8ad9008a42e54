package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCookie(t *testing.T, exp time.Time) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewCookie("", false).Set(c, "sid", "token", exp)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestCookieSetFutureExpiry(t *testing.T) {
	ck := setCookie(t, time.Now().Add(time.Hour))

	assert.Equal(t, "token", ck.Value)
	assert.InDelta(t, 3600, ck.MaxAge, 2)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Equal(t, "/", ck.Path)
}

func TestCookieSetPastExpiryDeletes(t *testing.T) {
	for _, exp := range []time.Time{time.Now(), time.Now().Add(-time.Minute)} {
		ck := setCookie(t, exp)
		assert.Negative(t, ck.MaxAge)
	}
}

func TestCookieClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewCookie("", false).Clear(c, "sid")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
