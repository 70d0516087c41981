package server

import (
	"time"

	"p5-manager/core/logger"
	"p5-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New builds the Fiber application serving the sketch directory at root.
// The caller owns Listen and shutdown.
func New(cfg Config, root string, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	app.Static("/", root, fiber.Static{
		Browse: cfg.Browse,
		// Sketch files change constantly while developing; never cache.
		CacheDuration: -1 * time.Second,
	})

	return app
}

// requestLogger logs every request with method, path, status and latency.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		l := logger.WithRayID(logg, c)
		l.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
