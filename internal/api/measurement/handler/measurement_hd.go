package measurementHandler

import (
	"time"

	"GarmentGolang/internal/api/measurement"
	contextPkg "GarmentGolang/pkg/context"
	"GarmentGolang/pkg/handlerUtil"
	"GarmentGolang/pkg/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

const (
	analyzeTimeout = 30 * time.Second
	batchTimeout   = 10 * time.Minute
)

func (h *MeasurementHandler) Analyze(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), analyzeTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing garment measurement request")

	var req measurement.AnalyzeRequest

	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_image_file")
		}

		fileContent, err := file.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
		}
		defer fileContent.Close()

		req.ImageBase64, err = h.utils.ConvertFileToBase64(fileContent)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_to_base64")
		}
		req.Model = garmentModelFromQuery(ctx)
	} else {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
		}

		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	}

	result, err := h.measurementService.Analyze(c, req.ImageBase64, req.Model)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_garment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":    requestID,
			"path":          ctx.Path(),
			"clothing_type": result.ClothingType,
			"measurements":  len(result.Measurements),
		}).Info("Garment measurement successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, measurement.AnalyzeResponse{
			Data: result,
		})
	}
}

func (h *MeasurementHandler) Validate(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req measurement.ValidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	outcome := h.measurementService.Validate(&req.Result)

	h.log.WithFields(log.Fields{
		"request_id":     requestID,
		"path":           ctx.Path(),
		"passed":         outcome.Passed,
		"missing_fields": len(outcome.MissingFields),
		"invalid_values": len(outcome.InvalidValues),
	}).Info("Measurement validation finished")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, measurement.ValidateResponse{
		Data: outcome,
	})
}

func (h *MeasurementHandler) AnalyzeBatch(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), batchTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req measurement.BatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"images":     len(req.Images),
	}).Info("Starting batch measurement run")

	resp, err := h.measurementService.AnalyzeBatch(c, req.Images, req.Model)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_batch")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
}

// handleMeasureWebSocket analyzes each binary frame as a standalone image
// and streams the result back as JSON. One frame, one model call.
func (h *MeasurementHandler) handleMeasureWebSocket(c *websocket.Conn) {
	h.log.Info("Measurement WebSocket client connected")
	defer h.log.Info("Measurement WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second
	model := garmentModelFromParam(c.Query("model"))

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Measurement WebSocket error: %v", err)
			} else {
				h.log.Info("Measurement WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
		result, err := h.measurementService.Analyze(ctx, encodeFrame(message), model)
		cancel()

		if err != nil {
			h.log.Errorf("Error analyzing frame: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
