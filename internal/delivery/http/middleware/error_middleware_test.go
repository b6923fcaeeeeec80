package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"placelog/internal/delivery/http/response"
	domainerrors "placelog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/user/signup", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newDiscardErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppErrorEnvelope(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newDiscardErrorMiddleware().HandleHTTPError(
		domainerrors.ErrKeyError.WrapMessage("email missing"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusBadRequest, body.Code)
	// Clients switch on the business code in the message field.
	assert.Equal(t, "KEY_ERROR", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "KEY_ERROR", body.Error.Code)
}

func TestErrorMiddleware_AppErrorKeepsOwnStatus(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newDiscardErrorMiddleware().HandleHTTPError(
		domainerrors.ErrAlreadyCheckedInToday.WrapMessage("check-in rejected"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ALREADY_CHECKED_IN_TODAY", body.Message)
}

func TestErrorMiddleware_UnknownErrorBecomesInternal(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newDiscardErrorMiddleware().HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	c, rec := newErrorTestContext(t)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	newDiscardErrorMiddleware().HandleHTTPError(
		domainerrors.ErrKeyError.WrapMessage("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}
