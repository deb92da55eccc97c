package measurement

import "GarmentGolang/internal/entity"

type AnalyzeRequest struct {
	ImageBase64 string              `json:"image_base64" validate:"required"`
	Model       entity.GarmentModel `json:"model" validate:"omitempty,oneof=flash pro"`
}

type AnalyzeResponse struct {
	Data  *entity.AnalysisResult `json:"data,omitempty"`
	Error string                 `json:"error,omitempty"`
}

type ValidateRequest struct {
	Result entity.AnalysisResult `json:"result" validate:"required"`
}

type ValidateResponse struct {
	Data entity.ValidationOutcome `json:"data"`
}

type BatchRequest struct {
	Images []string            `json:"images" validate:"required,min=1,dive,required"`
	Model  entity.GarmentModel `json:"model" validate:"omitempty,oneof=flash pro"`
}

// BatchItem is the per-image report of a batch run. Exactly one of Result
// or Error is populated; Validation is only present alongside Result.
type BatchItem struct {
	Index      int                       `json:"index"`
	Result     *entity.AnalysisResult    `json:"result,omitempty"`
	Validation *entity.ValidationOutcome `json:"validation,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

type BatchResponse struct {
	Items  []BatchItem `json:"items"`
	Passed int         `json:"passed"`
	Failed int         `json:"failed"`
}
