package gen_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hbomb79/Marquee/internal/api/gen"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, handler echo.HandlerFunc) (int, map[string]any) {
	t.Helper()
	ec := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, handler(ec.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func Test_EnvelopeAlwaysCarriesMessage(t *testing.T) {
	status, body := respond(t, func(ec echo.Context) error { return gen.OK(ec, "Videos fetched", []string{"a"}) })
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Videos fetched", body["message"])
	assert.Equal(t, []any{"a"}, body["data"])

	status, body = respond(t, func(ec echo.Context) error { return gen.Created(ec, "Draft created", nil) })
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Draft created", body["message"])

	_, body = respond(t, func(ec echo.Context) error { return gen.OK(ec, "", nil) })
	assert.Contains(t, body, "message")
}
