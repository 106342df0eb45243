package check

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"mnp-alarm/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, source *staticSource, fetcher *tableFetcher, sender *recordingSender) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := newTestService(source, fetcher, sender)
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleRun(t *testing.T) {
	sender := &recordingSender{}
	app := setupTestApp(t, &staticSource{set: referenceSet()}, &tableFetcher{network: "310260", owner: "TMO"}, sender)

	req := httptest.NewRequest("POST", "/check", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report reconcile.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, reconcile.RunResult{"DE": false, "US": true}, report.Results)
	assert.True(t, report.Alerted)
	assert.Len(t, sender.texts, 1)
}

func TestHandleRun_DryRun(t *testing.T) {
	sender := &recordingSender{}
	app := setupTestApp(t, &staticSource{set: referenceSet()}, &tableFetcher{}, sender)

	req := httptest.NewRequest("POST", "/check?dry_run=true", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["alerted"])
	assert.NotEmpty(t, body["alert_body"])
	assert.Empty(t, sender.texts)
}

func TestHandleRun_SetupError(t *testing.T) {
	app := setupTestApp(t, &staticSource{err: errors.New("no such table")}, &tableFetcher{}, &recordingSender{})

	req := httptest.NewRequest("POST", "/check", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "no such table")
}

func TestHandleReference(t *testing.T) {
	app := setupTestApp(t, &staticSource{set: referenceSet()}, &tableFetcher{}, &recordingSender{})

	req := httptest.NewRequest("GET", "/check/reference", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Groups []struct {
			Name    string `json:"name"`
			Numbers int    `json:"numbers"`
		} `json:"groups"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Groups, 2)
	assert.Equal(t, "US", body.Groups[1].Name)
	assert.Equal(t, 2, body.Groups[1].Numbers)
}

func TestHandleReference_Error(t *testing.T) {
	app := setupTestApp(t, &staticSource{err: errors.New("denied")}, &tableFetcher{}, &recordingSender{})

	req := httptest.NewRequest("GET", "/check/reference", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
