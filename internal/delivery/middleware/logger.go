package middleware

import (
	"log/slog"
	"time"

	"streamsync/config"
	deliverycontext "streamsync/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
// Successful requests are only logged in debug mode, failures always are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
		now:    time.Now,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()

		err := next(c)
		if err != nil {
			// Let the HTTP error handler write the response so the logged status is final.
			c.Error(err)
		}

		status := c.Response().Status
		if status < 400 && !m.debug {
			return nil
		}

		m.logRequest(c, start, status, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", m.now().Sub(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= 500:
		logLevel = slog.LevelError
	case status >= 400:
		logLevel = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
