package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/assistant"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/plans"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/models"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/services"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/metrics"
)

func newTestApp(responder services.Responder) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(recover.New())
	h := NewChatHandler(services.NewChatService(responder), metrics.New("test"))
	app.Post("/api/chat", h.Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestChat_InvalidInput(t *testing.T) {
	app := newTestApp(assistant.NewEngine(kb.Default(), nil, nil))

	tests := []struct {
		body string
		want string
	}{
		{`{"messages": null}`, "Messages must be an array"},
		{`{"messages": {"role": "user"}}`, "Messages must be an array"},
		{`{"messages": "hi"}`, "Messages must be an array"},
		{`{"messages": 7}`, "Messages must be an array"},
		{`{}`, "Messages must be an array"},
		{`{"messages": []}`, "No user message found"},
		{`{"messages": [{"role": "assistant", "content": "hello"}, {"role": "system", "content": "x"}]}`, "No user message found"},
		{`not json`, "Invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			status, body := postChat(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, tt.want, body["error"])
		})
	}
}

func TestChat_Greeting(t *testing.T) {
	app := newTestApp(assistant.NewEngine(kb.Default(), nil, nil))

	status, body := postChat(t, app, `{"messages": [{"role": "user", "content": "hi there"}]}`)
	require.Equal(t, fiber.StatusOK, status)

	response, ok := body["response"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.RoleAssistant, response["role"])
	assert.Contains(t, response["content"], "Arkana Digital")
}

func TestChat_PricingSurvivesUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	k := kb.Default()
	src := plans.NewSource(plans.Config{BaseURL: upstream.URL}, plans.NewMemoryCache(), nil)
	app := newTestApp(assistant.NewEngine(k, src, nil))

	status, body := postChat(t, app, `{"messages": [{"role": "user", "content": "how much does it cost"}]}`)
	require.Equal(t, fiber.StatusOK, status)

	content := body["response"].(map[string]interface{})["content"].(string)
	for _, p := range k.Pricing.Plans {
		assert.Contains(t, content, p.Name)
	}
	assert.NotContains(t, body, "error")
}

type failingResponder struct{}

func (failingResponder) Reply(ctx context.Context, utterance string) (*assistant.Reply, error) {
	return nil, errors.New("pq: relation \"secret_table\" does not exist")
}

type panickingResponder struct{}

func (panickingResponder) Reply(ctx context.Context, utterance string) (*assistant.Reply, error) {
	panic("nil map write")
}

func TestChat_InternalErrorIsGeneric(t *testing.T) {
	for name, responder := range map[string]services.Responder{
		"error": failingResponder{},
		"panic": panickingResponder{},
	} {
		t.Run(name, func(t *testing.T) {
			app := newTestApp(responder)

			status, body := postChat(t, app, `{"messages": [{"role": "user", "content": "hi"}]}`)
			assert.Equal(t, fiber.StatusInternalServerError, status)
			assert.Equal(t, map[string]interface{}{"error": "Internal Server Error"}, body)
		})
	}
}

func TestErrorHandler_KeepsClientErrors(t *testing.T) {
	app := newTestApp(assistant.NewEngine(kb.Default(), nil, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
