package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/metrics"
)

var recordHTTPRequest = metrics.RecordHTTPRequest

// MetricsMiddleware records request counts and latency labelled by the
// matched route pattern, so ids in paths do not explode label cardinality.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		recordHTTPRequest(c.Method(), routeLabel(c, status), strconv.Itoa(status), time.Since(start))
		return err
	}
}

func routeLabel(c *fiber.Ctx, status int) string {
	if status == fiber.StatusNotFound && c.Route().Path == "/" && c.Path() != "/" {
		return "unmatched"
	}
	return c.Route().Path
}
