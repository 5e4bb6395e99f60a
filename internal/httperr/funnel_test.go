package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(false)
	e.GET("/boom", func(echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestFunnelTaggedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *Error
		status  int
		message string
	}{
		{"unauthorized", Unauthorized(), http.StatusUnauthorized, "Access Denied"},
		{"forbidden", Forbidden("You do not own this course"), http.StatusForbidden, "You do not own this course"},
		{"not found", NotFound("Course not found"), http.StatusNotFound, "Course not found"},
		{"conflict", Conflict("There is a user associated to this email address!"), http.StatusConflict, "There is a user associated to this email address!"},
		{"internal", Internal(errors.New("query failed")), http.StatusInternalServerError, "query failed"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, body := serve(t, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestFunnelValidationShape(t *testing.T) {
	t.Parallel()

	rec, body := serve(t, Validation([]string{
		`Please provide a value for "title"`,
		`Please provide a value for "description"`,
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{
		`Please provide a value for "title"`,
		`Please provide a value for "description"`,
	}, body["errors"])
	assert.NotContains(t, body, "message")
}

func TestFunnelRouteNotFound(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/no/such/route", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Route Not Found", body["message"])
}

func TestFunnelUnexpectedError(t *testing.T) {
	t.Parallel()

	rec, body := serve(t, errors.New("driver: bad connection"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "driver: bad connection", body["message"])
}
