package httpserver

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-forecast/pkg/logger"
)

var quietPrefixes = []string{"/manage/", "/swagger/", "/images/"}

// RequestLogger logs one line per request, skipping health checks and static files.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, p := range quietPrefixes {
			if strings.HasPrefix(path, p) {
				return c.Next()
			}
		}

		start := time.Now()
		err := c.Next()

		fields := map[string]any{
			"method":     c.Method(),
			"uri":        c.OriginalURL(),
			"status":     c.Response().StatusCode(),
			"latency":    time.Since(start).String(),
			"request_id": RequestID(c),
		}
		if err != nil {
			fields["err"] = err.Error()
			l.Warning("request failed", fields)
			return err
		}

		l.Info("request completed", fields)
		return nil
	}
}

// RequestID returns the id set by the requestid middleware, or "".
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
