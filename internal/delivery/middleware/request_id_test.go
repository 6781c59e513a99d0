package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "rewards/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		keepsID   bool
		generates bool
	}{
		{name: "forwarded id is kept", header: "gw-2026.10.16:abc_1", keepsID: true},
		{name: "missing id is generated", header: "", generates: true},
		{name: "id with spaces is replaced", header: "abc def", generates: true},
		{name: "id with newline is replaced", header: "abc\nlevel=ERROR", generates: true},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxRequestIDLength+1), generates: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/points/balance", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID, seenEchoID string
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := mw.Process(func(c echo.Context) error {
				seenEchoID = deliverycontext.GetRequestID(c)
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenEchoID)
			assert.Equal(t, got, seenCtxID)

			if tt.keepsID {
				assert.Equal(t, tt.header, got)
			}
			if tt.generates {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}
