package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/pkg/jwt"
)

const testSecret = "test-secret-gizli"

func newTestToken(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", "ayse.yilmaz", role, "depo-takip-test", 15)
	require.NoError(t, err)
	return token
}

func newProtectedApp(handler fiber.Handler, middlewares ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{AuthMiddleware(testSecret)}, middlewares...)
	chain = append(chain, handler)
	app.Get("/korunan", chain...)
	return app
}

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func TestAuthMiddleware_TokenYoksa401(t *testing.T) {
	app := newProtectedApp(okHandler)

	req := httptest.NewRequest("GET", "/korunan", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BozukBaslik401(t *testing.T) {
	app := newProtectedApp(okHandler)

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_GecersizToken401(t *testing.T) {
	app := newProtectedApp(okHandler)

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Bearer ge.cer.siz")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_YanlisSecretleImzalanmisToken401(t *testing.T) {
	app := newProtectedApp(okHandler)

	token, err := jwt.Generate("baska-secret", "user-1", "ayse.yilmaz", "admin", "depo-takip-test", 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ClaimleriLocalsaYazar(t *testing.T) {
	app := newProtectedApp(func(c *fiber.Ctx) error {
		assert.Equal(t, "user-1", GetUserID(c))
		assert.Equal(t, "ayse.yilmaz", GetUsername(c))
		assert.Equal(t, "depocu", GetRole(c))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Bearer "+newTestToken(t, "depocu"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_UygunRolGecer(t *testing.T) {
	app := newProtectedApp(okHandler, RequireRole("admin"))

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Bearer "+newTestToken(t, "admin"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_CokluRoldenBiriYeterli(t *testing.T) {
	app := newProtectedApp(okHandler, RequireRole("admin", "depocu"))

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Bearer "+newTestToken(t, "depocu"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_YetkisizRol403(t *testing.T) {
	app := newProtectedApp(okHandler, RequireRole("admin", "depocu"))

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Bearer "+newTestToken(t, "izleyici"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_RolsuzToken401(t *testing.T) {
	app := newProtectedApp(okHandler, RequireRole("admin"))

	req := httptest.NewRequest("GET", "/korunan", nil)
	req.Header.Set("Authorization", "Bearer "+newTestToken(t, ""))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWT_UretVeCoz(t *testing.T) {
	token := newTestToken(t, "admin")

	userID, username, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ayse.yilmaz", username)
	assert.Equal(t, "admin", role)
}

func TestJWT_SuresiDolmusTokenReddedilir(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "ayse.yilmaz", "admin", "depo-takip-test", -5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}
