package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request-scoped logger carrying request_id to the request
// context and logs one line per request. An incoming X-Request-Id is reused.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestID := c.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		// handler errors are rendered here so the logged status is the one sent
		if err := next(c); err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		event := logger.Info()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}

		event.
			Str("method", c.Request().Method).
			Str("endpoint", c.Path()).
			Str("remote_ip", c.RealIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("Request processed")

		return nil
	}
}
