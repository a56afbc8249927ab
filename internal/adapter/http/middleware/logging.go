package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/metrics"
)

// RequestLogger returns middleware that logs each request on completion and
// records it in the HTTP metrics. Routes are labelled by their template so
// leg ids do not explode metric cardinality.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	log = logger.OrNop(log)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()
			status := res.Status

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.HTTPRequests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPDuration.WithLabelValues(req.Method, route).Observe(duration.Seconds())

			var event *zerolog.Event
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", route).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Msg("HTTP request")

			return nil
		}
	}
}
