package handlers_test

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lostfound "github.com/umtportal/lostfound"
	"github.com/umtportal/lostfound/pkg/authapi"
	"github.com/umtportal/lostfound/pkg/http/routes"
	"github.com/umtportal/lostfound/pkg/libs"
	"github.com/umtportal/lostfound/pkg/models"
	"github.com/umtportal/lostfound/pkg/objects"
	"github.com/umtportal/lostfound/pkg/utils"
)

// stubAuthService records calls and replays canned responses.
type stubAuthService struct {
	registerCalls []models.RegisterPayload
	registerErr   error
	registerRes   models.RegisterResult
	loginErr      error
	loginRes      models.LoginResult
	meErr         error
	meRes         models.UserProfile
}

func (s *stubAuthService) Register(_ context.Context, payload models.RegisterPayload) (models.RegisterResult, error) {
	s.registerCalls = append(s.registerCalls, payload)
	return s.registerRes, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _ models.LoginPayload) (models.LoginResult, error) {
	return s.loginRes, s.loginErr
}

func (s *stubAuthService) Me(_ context.Context, _ string) (models.UserProfile, error) {
	return s.meRes, s.meErr
}

type testConfig struct {
	values map[string]any
}

func (t *testConfig) Env(name string, def ...any) any     { return t.Get(name, def...) }
func (t *testConfig) Add(name string, cfg any)            { t.values[name] = cfg }
func (t *testConfig) Get(path string, def ...any) any {
	if v, ok := t.values[path]; ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}
func (t *testConfig) GetString(path string, def ...any) string {
	if v, ok := t.Get(path, def...).(string); ok {
		return v
	}
	return ""
}
func (t *testConfig) GetInt(path string, def ...any) int {
	if v, ok := t.Get(path, def...).(int); ok {
		return v
	}
	return 0
}
func (t *testConfig) GetBool(path string, def ...any) bool {
	if v, ok := t.Get(path, def...).(bool); ok {
		return v
	}
	return false
}
func (t *testConfig) GetDuration(path string, def ...any) time.Duration {
	if v, ok := t.Get(path, def...).(time.Duration); ok {
		return v
	}
	return 0
}

func newTestApp(t *testing.T, api *stubAuthService) *fiber.App {
	t.Helper()
	// Sets up the embedded view engine without opening a database.
	lostfound.NewPluginWithOptions()
	objects.Layout = "layouts/main"
	objects.Config = &testConfig{values: map[string]any{"portal.session_name": "access_token"}}
	objects.Security = libs.NewSecurityManager()
	objects.Audit = nil
	objects.API = api

	app := fiber.New()
	routes.Setup("/", app)
	return app
}

func postForm(app *fiber.App, path string, form url.Values) (*httptest.ResponseRecorder, string, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	for k, v := range resp.Header {
		rec.Header()[k] = v
	}
	return rec, string(body), err
}

func profileForm() url.Values {
	return url.Values{
		"step":        {"1"},
		"firstName":   {"Jane"},
		"lastName":    {"Doe"},
		"email":       {"a@umt.edu"},
		"accountType": {"student"},
	}
}

func credentialsForm() url.Values {
	form := profileForm()
	form.Set("step", "2")
	form.Set("password", "Abc123")
	form.Set("confirmPassword", "Abc123")
	form.Set("agreeTerms", "true")
	return form
}

func TestRegisterPage(t *testing.T) {
	app := newTestApp(t, &stubAuthService{})
	resp, err := app.Test(httptest.NewRequest("GET", utils.RegisterURI, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), `name="step" value="1"`)
	assert.Contains(t, string(body), "Continue")
}

func TestProfileStepAdvances(t *testing.T) {
	app := newTestApp(t, &stubAuthService{})
	rec, body, err := postForm(app, utils.RegisterURI, profileForm())
	require.NoError(t, err)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, `name="step" value="2"`)
	assert.Contains(t, body, `value="Jane"`)
	assert.Contains(t, body, `value="a@umt.edu"`)
}

func TestProfileStepRefusesIncomplete(t *testing.T) {
	api := &stubAuthService{}
	app := newTestApp(t, api)

	form := profileForm()
	form.Set("lastName", "")
	rec, body, err := postForm(app, utils.RegisterURI, form)
	require.NoError(t, err)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, `name="step" value="1"`)
	assert.Empty(t, api.registerCalls, "profile step must not hit the network")
}

func TestCredentialsStepRefusesInvalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(url.Values)
	}{
		{"password mismatch", func(f url.Values) { f.Set("confirmPassword", "Other1") }},
		{"terms not agreed", func(f url.Values) { f.Del("agreeTerms") }},
		{"empty password", func(f url.Values) { f.Set("password", ""); f.Set("confirmPassword", "") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &stubAuthService{}
			app := newTestApp(t, api)

			form := credentialsForm()
			tc.mutate(form)
			rec, body, err := postForm(app, utils.RegisterURI, form)
			require.NoError(t, err)

			assert.Equal(t, 200, rec.Code)
			assert.Contains(t, body, `name="step" value="2"`)
			assert.Empty(t, api.registerCalls, "invalid draft must not submit")
		})
	}
}

func TestCredentialsStepSubmits(t *testing.T) {
	api := &stubAuthService{
		registerRes: models.RegisterResult{
			Success: true,
			Message: "Registration successful! Please log in with your credentials.",
		},
	}
	app := newTestApp(t, api)

	rec, _, err := postForm(app, utils.RegisterURI, credentialsForm())
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusSeeOther, rec.Code)
	assert.Equal(t, utils.LoginURI, rec.Header().Get("Location"))
	require.Len(t, api.registerCalls, 1)
	assert.Equal(t, "a@umt.edu", api.registerCalls[0].Email)
	assert.Equal(t, "Jane Doe", api.registerCalls[0].FullName)
	assert.False(t, api.registerCalls[0].IsAdmin)
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "flash data should travel to the login view")
}

func TestAdminAccountTypeSubmitted(t *testing.T) {
	api := &stubAuthService{registerRes: models.RegisterResult{Success: true}}
	app := newTestApp(t, api)

	form := credentialsForm()
	form.Set("accountType", "admin")
	_, _, err := postForm(app, utils.RegisterURI, form)
	require.NoError(t, err)

	require.Len(t, api.registerCalls, 1)
	assert.True(t, api.registerCalls[0].IsAdmin)
}

func TestCredentialsStepShowsServerError(t *testing.T) {
	api := &stubAuthService{
		registerErr: &authapi.APIError{StatusCode: 400, Detail: "Email already registered"},
	}
	app := newTestApp(t, api)

	rec, body, err := postForm(app, utils.RegisterURI, credentialsForm())
	require.NoError(t, err)

	// The form comes back interactive with the decoded message inline.
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, "Email already registered")
	assert.Contains(t, body, `name="step" value="2"`)
	assert.Contains(t, body, "Create Account")
}

func TestCredentialsStepGenericErrorOnTransportFailure(t *testing.T) {
	api := &stubAuthService{registerErr: context.DeadlineExceeded}
	app := newTestApp(t, api)

	_, body, err := postForm(app, utils.RegisterURI, credentialsForm())
	require.NoError(t, err)
	assert.Contains(t, body, authapi.GenericRegistrationMessage)
}

func TestBackReturnsToProfile(t *testing.T) {
	app := newTestApp(t, &stubAuthService{})

	form := credentialsForm()
	form.Set("action", "back")
	rec, body, err := postForm(app, utils.RegisterURI, form)
	require.NoError(t, err)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, `name="step" value="1"`)
	assert.Contains(t, body, `value="Jane"`, "back must keep entered values")
}

func TestTogglePasswordVisibility(t *testing.T) {
	app := newTestApp(t, &stubAuthService{})

	form := credentialsForm()
	form.Set("action", "toggle-password")
	_, body, err := postForm(app, utils.RegisterURI, form)
	require.NoError(t, err)

	assert.Contains(t, body, `type="text" id="password"`)
	assert.Contains(t, body, `type="password" id="confirmPassword"`, "toggles are independent")
}

func TestLoginPageRenders(t *testing.T) {
	app := newTestApp(t, &stubAuthService{})
	resp, err := app.Test(httptest.NewRequest("GET", utils.LoginURI, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), "Login")
}

func TestPostLoginSetsTokenCookie(t *testing.T) {
	api := &stubAuthService{
		loginRes: models.LoginResult{
			AccessToken: "tok-123",
			User:        models.UserProfile{ID: "u-1", Email: "a@umt.edu"},
		},
	}
	app := newTestApp(t, api)

	rec, _, err := postForm(app, utils.LoginURI, url.Values{
		"email":    {"a@umt.edu"},
		"password": {"Abc123"},
	})
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusSeeOther, rec.Code)
	assert.Equal(t, utils.DashboardURI, rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "access_token=tok-123")
}

func TestPostLoginShowsAuthError(t *testing.T) {
	api := &stubAuthService{
		loginErr: &authapi.APIError{StatusCode: 401, Detail: "Invalid email or password."},
	}
	app := newTestApp(t, api)

	rec, body, err := postForm(app, utils.LoginURI, url.Values{
		"email":    {"a@umt.edu"},
		"password": {"wrong"},
	})
	require.NoError(t, err)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, "Invalid email or password.")
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, &stubAuthService{})
	resp, err := app.Test(httptest.NewRequest("GET", utils.HealthURI, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}
