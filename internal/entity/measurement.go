package entity

type ClothingType string

const (
	ClothingShirt ClothingType = "SHIRT"
	ClothingPants ClothingType = "PANTS"
	ClothingSkirt ClothingType = "SKIRT"
	ClothingDress ClothingType = "DRESS"
	ClothingOuter ClothingType = "OUTER"
)

type GarmentModel string

const (
	ModelFlash GarmentModel = "flash"
	ModelPro   GarmentModel = "pro"
)

// Point is a coordinate on the 0-1000 normalized image grid the model
// answers in. Out-of-range values are a validation finding, not a runtime
// error.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Measurement is one garment dimension returned by the model. ValueCm and
// DisplayValue are derived during calibration and arrive empty from the
// model; ValueCm stays nil when the ruler is degenerate.
type Measurement struct {
	Label        string   `json:"label"`
	Start        Point    `json:"startPoint"`
	End          Point    `json:"endPoint"`
	ValueCm      *float64 `json:"valueCm,omitempty"`
	DisplayValue string   `json:"displayValue,omitempty"`
}

type AnalysisResult struct {
	ClothingType  ClothingType  `json:"clothingType"`
	RulerStart    Point         `json:"rulerStart"`
	RulerEnd      Point         `json:"rulerEnd"`
	RulerLengthCm float64       `json:"rulerLength"`
	Measurements  []Measurement `json:"measurements"`
}

type ValidationOutcome struct {
	Passed        bool     `json:"passed"`
	MissingFields []string `json:"missing_fields"`
	InvalidValues []string `json:"invalid_values"`
}
