package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "rewards/internal/delivery/context"
	domainerrors "rewards/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldenContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offers/my_claimed_offers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-golden")

	return c, rec
}

func TestResponseEnvelopes(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	tests := []struct {
		name   string
		status int
		render func(c echo.Context) error
	}{
		{
			name:   "validation_error",
			status: http.StatusBadRequest,
			render: func(c echo.Context) error {
				return ValidationError(c, errors.New("quantity must be greater than 0"))
			},
		},
		{
			name:   "forbidden_without_details",
			status: http.StatusForbidden,
			render: func(c echo.Context) error {
				return Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied", "owner mismatch")
			},
		},
		{
			name:   "app_error",
			status: http.StatusUnprocessableEntity,
			render: func(c echo.Context) error {
				return HandleAppError(c, domainerrors.ErrSoldOut.WrapMessage("claim failed"))
			},
		},
		{
			name:   "message",
			status: http.StatusOK,
			render: func(c echo.Context) error {
				return Message(c, http.StatusOK, "Redeemed Successfully")
			},
		},
		{
			name:   "paged",
			status: http.StatusOK,
			render: func(c echo.Context) error {
				return Paged(c, []string{"first", "second"}, 12, 2, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newGoldenContext()

			require.NoError(t, tt.render(c))
			assert.Equal(t, tt.status, rec.Code)
			g.Assert(t, tt.name, rec.Body.Bytes())
		})
	}
}

func TestHandleAppError_PassesThroughServerErrors(t *testing.T) {
	c, rec := newGoldenContext()

	err := HandleAppError(c, errors.New("connection reset"))
	require.Error(t, err)
	assert.False(t, c.Response().Committed)

	err = HandleAppError(c, domainerrors.ErrInternalError)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	assert.Equal(t, 0, rec.Body.Len())
}
