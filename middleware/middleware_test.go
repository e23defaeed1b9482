package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtharindu/echannaling-admin/models"
	"github.com/rtharindu/echannaling-admin/services"
)

type sampleBody struct {
	Name  string   `json:"name" validate:"required,min=2"`
	Email string   `json:"email" validate:"required,email"`
	Tags  []string `json:"tags" validate:"omitempty,dive,oneof=a b"`
}

type sampleQuery struct {
	Page   *int  `query:"page" validate:"omitempty,min=1"`
	Active *bool `query:"active"`
}

type lookupFunc func(ctx context.Context, id string) (*models.User, error)

func (f lookupFunc) GetByID(ctx context.Context, id string) (*models.User, error) { return f(ctx, id) }

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	errs := ValidateStruct(sampleBody{Name: "x", Email: "bad", Tags: []string{"a", "z"}})

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Equal(t, "name must be at least 2 characters", byField["name"])
	assert.Equal(t, "Valid email is required", byField["email"])
	assert.Equal(t, "tags[1] must be one of: a, b", byField["tags[1]"])
	assert.Nil(t, ValidateStruct(sampleBody{Name: "ok", Email: "a@b.co"}))
}

func TestValidateBody(t *testing.T) {
	app := fiber.New()
	app.Post("/", ValidateBody[sampleBody](), func(c *fiber.Ctx) error {
		return c.JSON(Body[sampleBody](c))
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann","email":"ann@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ann", decode(t, resp)["name"])

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])
	assert.Len(t, body["errors"], 2)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", decode(t, resp)["message"])
}

func TestValidateQuery_CoercesTypes(t *testing.T) {
	app := fiber.New()
	app.Get("/", ValidateQuery[sampleQuery](), func(c *fiber.Ctx) error {
		q := Query[sampleQuery](c)
		return c.JSON(fiber.Map{"page": *q.Page, "active": *q.Active})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?page=3&active=true", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"page": 3.0, "active": true}, decode(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?page=0", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?page=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateParams(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", ValidateParams[models.IDParams](), func(c *fiber.Ctx) error {
		return c.SendString(Params[models.IDParams](c).ID)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func protectedApp(secret string, users UserLookup, handler fiber.Handler, mw ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{Protected(secret), RequireActiveUser(users, zerolog.Nop())}, mw...)
	chain = append(chain, handler)
	app.Get("/", chain...)
	return app
}

func bearer(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestProtected_SetsLocals(t *testing.T) {
	user := &models.User{ID: "u-1", Email: "a@example.com", Role: models.RoleSupervisor, IsActive: true}
	token, err := IssueToken("s3cret", time.Hour, user)
	require.NoError(t, err)

	users := lookupFunc(func(_ context.Context, id string) (*models.User, error) {
		assert.Equal(t, "u-1", id)
		return user, nil
	})
	app := protectedApp("s3cret", users, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": CurrentUserID(c), "role": CurrentRole(c)})
	})

	resp, err := app.Test(bearer(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"id": "u-1", "role": "SUPERVISOR"}, decode(t, resp))
}

func TestProtected_RejectsBadTokens(t *testing.T) {
	users := lookupFunc(func(context.Context, string) (*models.User, error) {
		t.Error("lookup must not run")
		return nil, services.ErrNotFound
	})
	app := protectedApp("s3cret", users, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access token required", decode(t, resp)["message"])

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "u-1", "role": "ADMIN", "exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	resp, err = app.Test(bearer(expired))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": "u-1", "exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	resp, err = app.Test(bearer(noRole))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid role in token", decode(t, resp)["message"])
}

func TestRequireActiveUser(t *testing.T) {
	user := &models.User{ID: "u-2", Role: models.RoleAdmin}
	token, err := IssueToken("k", time.Hour, user)
	require.NoError(t, err)
	ok := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }

	cases := []struct {
		name   string
		lookup lookupFunc
		want   int
	}{
		{"missing user", func(context.Context, string) (*models.User, error) { return nil, services.ErrNotFound }, http.StatusUnauthorized},
		{"inactive user", func(context.Context, string) (*models.User, error) { return &models.User{ID: "u-2"}, nil }, http.StatusForbidden},
		{"lookup failure", func(context.Context, string) (*models.User, error) { return nil, errors.New("db down") }, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := protectedApp("k", tc.lookup, ok).Test(bearer(token))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRequireRole_UsesStoredRole(t *testing.T) {
	// Token says ADMIN but the account has since been demoted.
	token, err := IssueToken("k", time.Hour, &models.User{ID: "u-3", Role: models.RoleAdmin})
	require.NoError(t, err)
	users := lookupFunc(func(context.Context, string) (*models.User, error) {
		return &models.User{ID: "u-3", Role: models.RoleAgent, IsActive: true}, nil
	})
	ok := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }

	resp, err := protectedApp("k", users, ok, RequireRole(models.RoleAdmin)).Test(bearer(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = protectedApp("k", users, ok, RequireRole(models.RoleAdmin, models.RoleAgent)).Test(bearer(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(zerolog.New(&buf)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNotFound) })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[0], `"path":"/ok"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[1], `"status":404`)
}
