package measurementService

import (
	"fmt"
	"strings"

	"GarmentGolang/internal/api/measurement"
	"GarmentGolang/internal/entity"
	jsoniter "github.com/json-iterator/go"
)

// responseShape mirrors entity.AnalysisResult with pointer fields so that
// absent top-level keys can be told apart from zero values.
type responseShape struct {
	ClothingType *entity.ClothingType `json:"clothingType"`
	RulerStart   *entity.Point        `json:"rulerStart"`
	RulerEnd     *entity.Point        `json:"rulerEnd"`
	RulerLength  float64              `json:"rulerLength"`
	Measurements []entity.Measurement `json:"measurements"`
}

// parseModelResponse extracts the measurement JSON from raw model text.
// Models regularly wrap the object in markdown fences or conversational
// prose despite the prompt, so the parser strips fences first and then
// takes the substring between the first "{" and the last "}".
func parseModelResponse(raw string) (*entity.AnalysisResult, error) {
	cleaned := stripCodeFences(raw)

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return nil, fmt.Errorf("%w: no JSON object in response text", measurement.ErrMalformedResponse)
	}

	jsonStr := cleaned[jsonStart : jsonEnd+1]

	var shape responseShape
	if err := jsoniter.Unmarshal([]byte(jsonStr), &shape); err != nil {
		return nil, fmt.Errorf("%w: %s", measurement.ErrMalformedResponse, err.Error())
	}

	var missing []string
	if shape.ClothingType == nil {
		missing = append(missing, "clothingType")
	}
	if shape.RulerStart == nil {
		missing = append(missing, "rulerStart")
	}
	if shape.RulerEnd == nil {
		missing = append(missing, "rulerEnd")
	}
	if shape.Measurements == nil {
		missing = append(missing, "measurements")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields %s", measurement.ErrMalformedResponse, strings.Join(missing, ", "))
	}

	return &entity.AnalysisResult{
		ClothingType:  *shape.ClothingType,
		RulerStart:    *shape.RulerStart,
		RulerEnd:      *shape.RulerEnd,
		RulerLengthCm: shape.RulerLength,
		Measurements:  shape.Measurements,
	}, nil
}

func stripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	return strings.ReplaceAll(cleaned, "```", "")
}
