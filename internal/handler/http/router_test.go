package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	handler "github.com/gearshift-labs/partsdepot/internal/handler/http"
	"github.com/gearshift-labs/partsdepot/internal/handler/http/mocks"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/logger"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/session"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testEnv wires the router against in-memory repositories with a real session
// codec, so requests travel the same middleware and gatekeeper chains as in
// production.
type testEnv struct {
	users  *mocks.MockUserRepository
	cars   *mocks.MockCarRepository
	parts  *mocks.MockSparePartRepository
	orders *mocks.MockOrderRepository
	codec  *session.Codec
	router *handler.Router
	engine *gin.Engine
}

func newTestEnv() *testEnv {
	e := &testEnv{
		users:  mocks.NewMockUserRepository(),
		cars:   mocks.NewMockCarRepository(),
		parts:  mocks.NewMockSparePartRepository(),
		orders: mocks.NewMockOrderRepository(),
		codec:  session.NewCodec("test-secret", time.Hour),
	}
	e.router = handler.NewRouter(
		e.users, e.cars, e.parts, e.orders,
		e.codec, logger.NewStdLogger(),
		"http://localhost:8080", "client-id", "client-secret",
	)
	e.engine = gin.New()
	e.router.Register(e.engine)
	return e
}

// login seeds a user and returns it with a valid session cookie.
func (e *testEnv) login(t *testing.T, role entity.UserRole) (entity.User, *http.Cookie) {
	t.Helper()
	user := e.users.Seed(entity.User{Name: "Test " + string(role), Role: role})
	token, err := e.codec.Issue(user.ID.Hex())
	if err != nil {
		t.Fatalf("issuing session token: %v", err)
	}
	return user, &http.Cookie{Name: session.CookieName, Value: token}
}

func (e *testEnv) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	e.engine.ServeHTTP(w, req)
	return w
}

func TestRootHelloWorld(t *testing.T) {
	e := newTestEnv()
	w := e.do("GET", "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello World", w.Body.String())
}

func TestUnauthenticatedRequestsGetPlainText401(t *testing.T) {
	e := newTestEnv()
	for _, path := range []string{"/users", "/cars", "/spare-parts", "/orders"} {
		w := e.do("GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "Unauthorized", w.Body.String(), path)
	}
}

func TestStaleSessionCookieIsUnauthenticated(t *testing.T) {
	e := newTestEnv()
	user, cookie := e.login(t, entity.UserRoleClient)

	// Delete the user behind a still-valid cookie; identity resolution fails
	// silently and the Authenticate stage answers.
	_, err := e.users.DeleteUserByID(context.Background(), user.ID.Hex())
	assert.NoError(t, err)

	w := e.do("GET", "/cars", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", w.Body.String())
}

func TestGithubCallbackRejectsStateMismatch(t *testing.T) {
	e := newTestEnv()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/github/callback?state=forged&code=x", nil)
	req.AddCookie(&http.Cookie{Name: "oauthState", Value: "genuine"})
	e.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid CSRF state token")
}

func TestGithubLoginRedirectsWithStateCookie(t *testing.T) {
	e := newTestEnv()
	w := e.do("GET", "/auth/github/login", "", nil)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "github.com/login/oauth/authorize")
	assert.Contains(t, location, "client_id=client-id")

	var state string
	for _, c := range w.Result().Cookies() {
		if c.Name == "oauthState" {
			state = c.Value
		}
	}
	assert.NotEmpty(t, state, "state cookie must be set")
	assert.Contains(t, location, "state="+state)
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	e := newTestEnv()
	_, cookie := e.login(t, entity.UserRoleClient)
	w := e.do("GET", "/logout", "", cookie)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie must be expired")
}
