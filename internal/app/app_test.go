package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DIMO-Network/slack-challenge-api/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newTestApp() *fiber.App {
	settings := config.Settings{}
	settings.ApplyDefaults()
	return CreateFiberApp(zerolog.Nop(), &settings)
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestCreateFiberApp_Challenge(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, err := app.Test(postJSON(`{"challenge":"challengetoken"}`))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"challenge":"challengetoken"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestCreateFiberApp_Acknowledge(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, err := app.Test(postJSON(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `"ok"`, string(body))
}

func TestCreateFiberApp_BodyLimit(t *testing.T) {
	t.Parallel()

	t.Run("body at the limit is accepted", func(t *testing.T) {
		app := newTestApp()
		prefix, suffix := `{"challenge":"`, `"}`
		value := strings.Repeat("a", MaxBodyBytes-len(prefix)-len(suffix))

		resp, err := app.Test(postJSON(prefix + value + suffix))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, value, out["challenge"])
	})

	t.Run("body over the limit is rejected", func(t *testing.T) {
		app := newTestApp()
		body := `{"challenge":"` + strings.Repeat("a", MaxBodyBytes) + `"}`

		resp, err := app.Test(postJSON(body))
		if err != nil {
			// The server may drop the connection after writing the 413.
			require.ErrorIs(t, err, fasthttp.ErrBodyTooLarge)
			return
		}
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}

func TestCreateFiberApp_Routing(t *testing.T) {
	t.Parallel()

	t.Run("GET / is not allowed", func(t *testing.T) {
		app := newTestApp()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		assert.Contains(t, []int{fiber.StatusNotFound, fiber.StatusMethodNotAllowed}, resp.StatusCode)
	})

	t.Run("unknown path", func(t *testing.T) {
		app := newTestApp()
		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"challenge":"abc"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("health", func(t *testing.T) {
		app := newTestApp()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Server is up and running", out["data"])
	})

	t.Run("swagger doc", func(t *testing.T) {
		app := newTestApp()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "Slack Challenge API")
		assert.Contains(t, string(body), `bare JSON string \"ok\"`)
	})
}

func TestCreateFiberApp_StrictJSON(t *testing.T) {
	t.Parallel()

	t.Run("html characters round trip", func(t *testing.T) {
		app := newTestApp()
		resp, err := app.Test(postJSON(`{"challenge":"<a&b>"}`))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, `{"challenge":"<a&b>"}`, string(body))
	})

	for name, in := range map[string]string{
		"invalid utf-8":         "{\"challenge\":\"a\xffb\"}",
		"lone surrogate escape": `{"challenge":"\ud800"}`,
	} {
		t.Run(name, func(t *testing.T) {
			app := newTestApp()
			resp, err := app.Test(postJSON(in))
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateFiberApp_MalformedJSON(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, err := app.Test(postJSON(`not json`))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
