package measurementHandler

import (
	measurementService "GarmentGolang/internal/api/measurement/service"
	"GarmentGolang/internal/middleware"
	"GarmentGolang/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type MeasurementHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	measurementService measurementService.IMeasurementService
	utils              utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ms measurementService.IMeasurementService,
	utils utils.IUtils,
) *MeasurementHandler {
	return &MeasurementHandler{
		measurementService: ms,
		log:                log,
		validator:          validator,
		middleware:         middleware,
		utils:              utils,
	}
}

func (h *MeasurementHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	measure := srv.Group("/measure")
	measure.Use("/ws", wsMiddleware)
	measure.Get("/ws", websocket.New(h.handleMeasureWebSocket))
	measure.Post("/analyze", h.Analyze)
	measure.Post("/validate", h.Validate)
	measure.Post("/batch", h.AnalyzeBatch)
}
