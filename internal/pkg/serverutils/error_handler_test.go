package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"petgroom-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct {
	errors int
}

func (l *nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *nopLogger) Info(module, message string, details map[string]interface{})  {}
func (l *nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *nopLogger) Error(module, message string, details map[string]interface{}) { l.errors++ }
func (l *nopLogger) Sync() error                                                  { return nil }

func testApp(log *nopLogger, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(log))
	app.Get("/boom", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, errorBody) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerMapsCodesToStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperror.NewValidation("validation failed", nil), http.StatusBadRequest},
		{"not found", apperror.NewNotFound("client not found"), http.StatusNotFound},
		{"forbidden", apperror.NewForbidden("invalid credentials"), http.StatusForbidden},
		{"conflict", apperror.NewConflict("subscription is inactive"), http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(&nopLogger{}, func(ctx *fiber.Ctx) error {
				return tc.err
			})

			status, body := doRequest(t, app)
			assert.Equal(t, tc.status, status)
			assert.False(t, body.Success)
			assert.Equal(t, tc.err.Error(), body.Message)
		})
	}
}

func TestErrorHandlerHidesInternalCause(t *testing.T) {
	log := &nopLogger{}
	app := testApp(log, func(ctx *fiber.Ctx) error {
		return apperror.NewInternal(errors.New("dial tcp: connection refused"))
	})

	status, body := doRequest(t, app)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, body.Message, "connection refused")
	assert.Equal(t, 1, log.errors)
}

func TestErrorHandlerIncludesValidationFields(t *testing.T) {
	app := testApp(&nopLogger{}, func(ctx *fiber.Ctx) error {
		return apperror.NewValidation("validation failed", map[string]string{
			"email": "must be a valid email address",
		})
	})

	status, body := doRequest(t, app)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "must be a valid email address", body.Fields["email"])
}

func TestErrorHandlerPassesFiberErrorsThrough(t *testing.T) {
	app := testApp(&nopLogger{}, func(ctx *fiber.Ctx) error {
		return fiber.ErrUnprocessableEntity
	})

	status, body := doRequest(t, app)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.False(t, body.Success)
}

func TestErrorHandlerWrapsUnknownErrors(t *testing.T) {
	log := &nopLogger{}
	app := testApp(log, func(ctx *fiber.Ctx) error {
		return errors.New("something odd")
	})

	status, body := doRequest(t, app)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body.Message)
	assert.Equal(t, 1, log.errors)
}
