package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/metrics"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.3

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request, keyed by route template.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status, errMsg := outcome(c, err)
			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Route:      route(c),
				StatusCode: status,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
				Error:      errMsg,
			})
			return err
		}
	}
}

// outcome predicts the status the echo error handler will write for an
// uncommitted error response; it runs after this middleware returns.
func outcome(c echo.Context, err error) (int, string) {
	if err == nil {
		return c.Response().Status, ""
	}
	if c.Response().Committed {
		return c.Response().Status, err.Error()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	return http.StatusInternalServerError, err.Error()
}
