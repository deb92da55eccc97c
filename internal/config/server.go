package config

import (
	"context"
	"fmt"
	"os"

	measurementHandler "GarmentGolang/internal/api/measurement/handler"
	measurementService "GarmentGolang/internal/api/measurement/service"
	"GarmentGolang/internal/middleware"
	"GarmentGolang/pkg/gemini"
	"GarmentGolang/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	geminiClient gemini.IGemini
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.geminiClient == nil {
		return nil, fmt.Errorf("gemini client is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithGeminiClient takes the credential explicitly so tests can construct
// a server against a fake client and a missing key fails at startup, not
// on the first request.
func WithGeminiClient(cfg gemini.Config) ServerOption {
	return func(s *Server) error {
		client, err := gemini.New(context.Background(), cfg)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	measurementServices := measurementService.New(s.log, s.geminiClient, s.utils)
	measurementHandlers := measurementHandler.New(s.log, s.validator, s.middleware, measurementServices, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, measurementHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
