package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"rewards/internal/delivery/api/validator"
	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds a JSON request context; a nil userID leaves it unauthenticated.
func newTestContext(method, target, body string, userID uuid.UUID, roles ...entity.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != uuid.Nil {
		if len(roles) == 0 {
			roles = entity.Roles{entity.RoleUser}
		}
		deliverycontext.SetUser(c, userID, roles)
	}

	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %s", rec.Body.String())

	code, _ := errInfo["code"].(string)

	return code
}
