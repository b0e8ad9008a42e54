package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/gryffintwin/config"
	"github.com/oksasatya/gryffintwin/internal/container"
	"github.com/oksasatya/gryffintwin/internal/infrastructure/memory"
	"github.com/oksasatya/gryffintwin/internal/session"
	"github.com/oksasatya/gryffintwin/pkg/helpers"
)

var gatedPaths = []string{
	"/dashboard", "/expenses", "/analytics", "/goals", "/security", "/portfolio", "/myfam",
	"/api/user", "/api/dashboard", "/api/expenses",
}

type testServer struct {
	*httptest.Server
	store *memory.SessionStore
	cfg   *config.Config
}

func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppName:           "gryffintwin",
		Env:               "test",
		SessionSecret:     "test-secret",
		SessionTTL:        24 * time.Hour,
		SessionCookieName: "gryffintwin.sid",
		ExpenseBudget:     4200,
	}
	if mutate != nil {
		mutate(cfg)
	}
	logger := helpers.NewNopLogger()
	store := memory.NewSessionStore()
	mgr := session.NewManager(store, helpers.NewSessionSigner(cfg.SessionSecret), helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure), cfg.SessionCookieName, cfg.SessionTTL)
	ctr := container.New(cfg, logger, memory.NewDemoUserRepository(), memory.NewFinanceRepository(), mgr)

	engine, err := NewEngine(ctr)
	require.NoError(t, err)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, store: store, cfg: cfg}
}

func (s *testServer) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, c *http.Client, u string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func login(t *testing.T, c *http.Client, base, email, password string) (*http.Response, string) {
	t.Helper()
	resp, err := c.PostForm(base+"/login", url.Values{"email": {email}, "password": {password}})
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func assertRedirect(t *testing.T, resp *http.Response, to string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, resp.StatusCode, resp.Request.URL.Path)
	assert.Equal(t, to, resp.Header.Get("Location"), resp.Request.URL.Path)
}

func TestGatedPathsRedirectWithoutSession(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	for _, p := range gatedPaths {
		resp, _ := get(t, c, srv.URL+p)
		assertRedirect(t, resp, "/")
	}
}

func TestRootRendersLoginForAnonymous(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, body := get(t, c, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/login"`)

	_, body = get(t, c, srv.URL+"/?error=Session+expired")
	assert.Contains(t, body, "Session expired")

	resp, body = get(t, c, srv.URL+"/login")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="/login"`)
	assert.NotContains(t, body, `class="error"`)
}

func TestLoginSuccessAndAPIUser(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, _ := login(t, c, srv.URL, "user@example.com", "password123")
	assertRedirect(t, resp, "/dashboard")

	resp, body := get(t, c, srv.URL+"/api/user")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"user":{"email":"user@example.com","name":"Harry Potter","role":"admin"}}`, body)

	for _, p := range []string{"/", "/login"} {
		resp, _ = get(t, c, srv.URL+p)
		assertRedirect(t, resp, "/dashboard")
	}
}

func TestLoginWrongPasswordDoesNotMutateSession(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)
	get(t, c, srv.URL+"/")

	resp, body := login(t, c, srv.URL, "user@example.com", "wrong")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Invalid email or password.")

	resp, _ = get(t, c, srv.URL+"/api/user")
	assertRedirect(t, resp, "/")
	assert.Equal(t, 1, srv.store.Len())
}

func TestLoginUnknownEmail(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, body := login(t, c, srv.URL, "draco@slytherin.com", "password123")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Invalid email or password.")
}

func TestLoginMissingFields(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, body := login(t, c, srv.URL, "user@example.com", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Please enter email and password.")

	resp, err := c.Post(srv.URL+"/login", "application/x-www-form-urlencoded", strings.NewReader(""))
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(b), "Please enter email and password.")
}

func TestLoginAcceptsJSONBody(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, err := c.Post(srv.URL+"/login", "application/json", strings.NewReader(`{"email":"hermione@gryffindor.com","password":"gryffindor123"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assertRedirect(t, resp, "/dashboard")

	_, body := get(t, c, srv.URL+"/api/user")
	assert.Contains(t, body, `"name":"Hermione Granger"`)
}

func TestAPIExpensesTotal(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)
	login(t, c, srv.URL, "user@example.com", "password123")

	resp, body := get(t, c, srv.URL+"/api/expenses")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Success  bool              `json:"success"`
		Total    json.Number       `json:"total"`
		Budget   json.Number       `json:"budget"`
		Expenses []json.RawMessage `json:"expenses"`
	}
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, "427.44", got.Total.String())
	assert.Equal(t, "4200", got.Budget.String())
	assert.Len(t, got.Expenses, 6)
	assert.JSONEq(t, `{"date":"Dec 05, 2025","category":"Food","description":"Lunch at Restaurant","amount":45.5,"status":"Completed"}`, string(got.Expenses[0]))
}

func TestAPIDashboard(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)
	login(t, c, srv.URL, "user@example.com", "password123")

	_, body := get(t, c, srv.URL+"/api/dashboard")
	var got struct {
		Success bool `json:"success"`
		Data    struct {
			TotalBalance int `json:"total_balance"`
			Accounts     []struct {
				Name string `json:"name"`
			} `json:"accounts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.True(t, got.Success)
	assert.Equal(t, 24580, got.Data.TotalBalance)
	assert.Len(t, got.Data.Accounts, 4)
}

func TestGatedPagesRender(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)
	login(t, c, srv.URL, "ron@gryffindor.com", "potter123")

	for _, p := range gatedPaths[:7] {
		resp, body := get(t, c, srv.URL+p)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.Contains(t, body, "Ron Weasley", p)
	}

	_, body := get(t, c, srv.URL+"/expenses")
	assert.Contains(t, body, "$427.44")
	assert.Contains(t, body, "$4200.00")
	assert.Contains(t, body, "Online Course")

	_, body = get(t, c, srv.URL+"/dashboard")
	assert.Contains(t, body, "Money Market")
}

func TestLogoutEndsSession(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)
	login(t, c, srv.URL, "user@example.com", "password123")

	resp, _ := get(t, c, srv.URL+"/logout")
	assertRedirect(t, resp, "/")

	for _, p := range gatedPaths {
		resp, _ := get(t, c, srv.URL+p)
		assertRedirect(t, resp, "/")
	}
}

func TestOldCookieIsUselessAfterLogout(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)
	login(t, c, srv.URL, "user@example.com", "password123")
	u, _ := url.Parse(srv.URL)
	stolen := c.Jar.Cookies(u)
	require.NotEmpty(t, stolen)

	get(t, c, srv.URL+"/logout")

	other := srv.client(t)
	other.Jar.SetCookies(u, stolen)
	resp, _ := get(t, other, srv.URL+"/api/user")
	assertRedirect(t, resp, "/")
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, body := get(t, c, srv.URL+"/nowhere")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Go to login")
	assert.NotContains(t, body, "Harry Potter")

	login(t, c, srv.URL, "user@example.com", "password123")
	resp, body = get(t, c, srv.URL+"/api/nowhere")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Harry Potter")
	assert.Contains(t, body, "Back to dashboard")
}

func TestSessionCookieAttributes(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, _ := get(t, c, srv.URL+"/")
	var ck *http.Cookie
	for _, x := range resp.Cookies() {
		if x.Name == "gryffintwin.sid" {
			ck = x
		}
	}
	require.NotNil(t, ck)
	assert.False(t, ck.Secure)
	assert.True(t, ck.HttpOnly)
	assert.InDelta(t, (24 * time.Hour).Seconds(), ck.MaxAge, 5)
}

func TestHealthAndStatic(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)

	resp, body := get(t, c, srv.URL+"/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)

	resp, _ = get(t, c, srv.URL+"/static/app.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDebugVarsAdminOnly(t *testing.T) {
	srv := newTestServer(t, func(cfg *config.Config) { cfg.DebugMetricsEnabled = true })

	anon := srv.client(t)
	resp, _ := get(t, anon, srv.URL+"/api/debug/vars")
	assertRedirect(t, resp, "/")

	ron := srv.client(t)
	login(t, ron, srv.URL, "ron@gryffindor.com", "potter123")
	resp, _ = get(t, ron, srv.URL+"/api/debug/vars")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	harry := srv.client(t)
	login(t, harry, srv.URL, "user@example.com", "password123")
	resp, body := get(t, harry, srv.URL+"/api/debug/vars")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "logins_succeeded")
}

func TestDebugVarsDisabledByDefault(t *testing.T) {
	srv := newTestServer(t, nil)
	c := srv.client(t)
	login(t, c, srv.URL, "user@example.com", "password123")

	resp, _ := get(t, c, srv.URL+"/api/debug/vars")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
