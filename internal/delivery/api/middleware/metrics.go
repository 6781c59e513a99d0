package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Metrics observes the latency of every routed request.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		status := c.Response().Status
		if err != nil {
			// The error handler has not run yet
			status = statusOf(err)
		}

		metrics.HTTPRequestDuration.
			WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		return err
	}
}

func statusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
