package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LoggerConfig struct {
	Skipper           middleware.Skipper
	Level             zerolog.Level
	LogRequestHeader  bool
	LogResponseHeader bool
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper: middleware.DefaultSkipper,
	Level:   zerolog.DebugLevel,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a request scoped logger carrying the request id
// to the request context and logs every finished request.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().Str("id", id).Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			e := l.WithLevel(config.Level).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", time.Since(start))

			if config.LogRequestHeader {
				e = e.Interface("request_header", req.Header)
			}
			if config.LogResponseHeader {
				e = e.Interface("response_header", res.Header())
			}

			e.Msg("http_request")

			return nil
		}
	}
}
