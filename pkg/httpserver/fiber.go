package httpserver

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"weather-stats/pkg/logger"
)

// Options tunes the fiber server; zero timeouts mean no limit.
type Options struct {
	AppName      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail string `json:"detail" example:"ID not found"`
}

// InitFiberServer builds the app. Immutable is on: parsed request values end up in stored records.
func InitFiberServer(opts Options, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		DisableStartupMessage: true,
		Immutable:             true,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		IdleTimeout:           opts.IdleTimeout,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler(l),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(cors.New())
	s.Use(requestLogger(l))
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	return s
}

// errorHandler turns errors that escape the handlers into ErrorResponse bodies.
func errorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		detail := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			detail = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			l.Error(err, map[string]any{
				"method": c.Method(),
				"path":   c.Path(),
			})
		}

		return c.Status(code).JSON(ErrorResponse{Detail: detail})
	}
}

func requestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		l.Info("http request", map[string]any{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
		})

		return err
	}
}
