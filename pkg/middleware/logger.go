// pkg/middleware/logger.go

package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/pkg/metrics"
)

// InjectLogger - мидлвэр для добавления логгера в контекст запроса.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("logger", logger)
			return next(c)
		}
	}
}

// RequestObserver логирует каждый запрос и пишет HTTP-метрики.
// Метка path - шаблон маршрута (/api/orders/:id), а не сырой URL.
func RequestObserver(logger *zap.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			elapsed := time.Since(start)

			m.HTTPRequests.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path).Observe(elapsed.Seconds())

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", status),
				zap.Duration("latency", elapsed),
			}
			switch {
			case status >= 500:
				logger.Error("HTTP-запрос", append(fields, zap.Error(err))...)
			case status >= 400:
				logger.Warn("HTTP-запрос", fields...)
			default:
				logger.Debug("HTTP-запрос", fields...)
			}
			return nil
		}
	}
}
