package measurementService

import (
	"fmt"

	"GarmentGolang/internal/api/measurement"
	"GarmentGolang/internal/entity"
	contextPkg "GarmentGolang/pkg/context"
	"GarmentGolang/pkg/geometry"
	"GarmentGolang/pkg/log"
	"golang.org/x/net/context"
)

const jpegQuality = 90

// Analyze runs one full measurement cycle: build the prompt, make a single
// model call, parse the reply and calibrate it. It never retries; a failed
// call is reported as-is so the caller can decide whether to ask the user
// for a new credential or simply try again.
func (s *measurementService) Analyze(ctx context.Context, imagePayload string, model entity.GarmentModel) (*entity.AnalysisResult, error) {
	imageData, err := s.utils.DecodeImagePayload(imagePayload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", measurement.ErrInvalidImagePayload, err.Error())
	}

	imageData = s.utils.ReencodeAsJPEG(imageData, jpegQuality)

	rawText, err := s.gemini.AnalyzeImage(ctx, imageData, buildMeasurementPrompt(), model)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"model":      model,
			"error":      err.Error(),
		}).Warn("Gemini measurement call failed")
		return nil, err
	}

	result, err := parseModelResponse(rawText)
	if err != nil {
		s.log.WithFields(log.Fields{
			"model":       model,
			"error":       err.Error(),
			"text_length": len(rawText),
		}).Warn("Could not parse measurement response")
		return nil, err
	}

	calibrated := geometry.Calibrate(result)

	s.log.WithFields(log.Fields{
		"clothing_type": calibrated.ClothingType,
		"measurements":  len(calibrated.Measurements),
	}).Debug("Measurement analysis calibrated")

	return calibrated, nil
}
