package dashboard

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"onboarding-dashboard/core/server"
	"onboarding-dashboard/core/utils"
	"onboarding-dashboard/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	assets, _ := web.Assets("")
	templates, err := web.Templates(assets)
	require.NoError(t, err)

	app := server.New(server.Config{Debug: true}, server.NewViews(templates, false))
	require.NoError(t, NewFeature(utils.NewRandom(4), zap.NewNop()).Load(app))
	return app
}

func TestHandleIndex(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	assert.Contains(t, html, Title)
	assert.Contains(t, html, "/static/css/tailwind.min.css")
	assert.Contains(t, html, "/static/js/chart.min.js")
	assert.Contains(t, html, "Regulatory Due Diligence")
	assert.Contains(t, html, "Review missing ISDA")
}

func TestHandleData(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "stage_data")
	assert.Contains(t, body, "totals")
	assert.Len(t, body["action_items"], 3)

	stages, ok := body["stage_data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, stages, "ssi_setup")
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "dashboard", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
