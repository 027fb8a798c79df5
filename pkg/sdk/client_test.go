package sdk_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ethanbaker/highlevel/internal/actions"
	"github.com/ethanbaker/highlevel/internal/api"
	"github.com/ethanbaker/highlevel/internal/testutil/apptest"
	"github.com/ethanbaker/highlevel/pkg/sdk"
	"github.com/ethanbaker/highlevel/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, app *apptest.App, apiKey string) *sdk.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg, err := actions.NewRegistry(app)
	require.NoError(t, err)

	engine := api.NewEngine(utils.NewConfig(map[string]string{utils.KeyAPIKey: "secret"}), reg)
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return sdk.NewClient(server.URL, apiKey)
}

func TestClient(t *testing.T) {
	app := apptest.New("loc-1")
	app.Responses["/users/"] = `{"users":[{"id":"u1","name":"Ada"}]}`
	app.FreeSlotsBody = `{"2024-01-15":{"slots":["2024-01-15T09:00:00Z"]}}`

	client := newTestClient(t, app, "secret")
	ctx := context.Background()

	defs, err := client.ListActions(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	props, err := client.ResolveProps(ctx, "highlevel_oauth-send-new-message", map[string]any{"type": "Email"})
	require.NoError(t, err)
	names := []string{}
	for _, p := range props {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "emailFrom")
	assert.NotContains(t, names, "message")

	options, err := client.PropOptions(ctx, "highlevel_oauth-get-calendar-free-slots", "userId", nil)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Ada", options[0].Label)

	result, err := client.RunAction(ctx, "highlevel_oauth-get-calendar-free-slots", map[string]any{
		"calendarId": "cal-1",
		"startDate":  "2024-01-15",
		"endDate":    "2024-01-16",
	})
	require.NoError(t, err)
	assert.Equal(t, "Successfully retrieved 1 free slots from calendar cal-1", result.Summary)
	assert.Contains(t, result.Response, "2024-01-15")
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestClient(t, apptest.New("loc-1"), "wrong").ListActions(ctx)
	assert.Error(t, err)

	_, err = newTestClient(t, apptest.New("loc-1"), "secret").RunAction(ctx, "missing", nil)
	assert.ErrorContains(t, err, "404")
}
