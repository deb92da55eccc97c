package geometry

import (
	"testing"

	"GarmentGolang/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	require.Equal(t, 500.0, Distance(entity.Point{X: 0, Y: 500}, entity.Point{X: 500, Y: 500}))
	require.Equal(t, 5.0, Distance(entity.Point{X: 0, Y: 0}, entity.Point{X: 3, Y: 4}))
	require.Equal(t, 0.0, Distance(entity.Point{X: 7, Y: 7}, entity.Point{X: 7, Y: 7}))
}

func TestCalibrateDerivesCentimeters(t *testing.T) {
	result := &entity.AnalysisResult{
		ClothingType:  entity.ClothingShirt,
		RulerStart:    entity.Point{X: 0, Y: 500},
		RulerEnd:      entity.Point{X: 500, Y: 500},
		RulerLengthCm: 50,
		Measurements: []entity.Measurement{
			{Label: "가슴단면", Start: entity.Point{X: 0, Y: 800}, End: entity.Point{X: 250, Y: 800}},
		},
	}

	calibrated := Calibrate(result)

	m := calibrated.Measurements[0]
	require.NotNil(t, m.ValueCm)
	require.Equal(t, 25.0, *m.ValueCm)
	require.Equal(t, "25.0cm", m.DisplayValue)
}

func TestCalibrateRoundsToOneDecimal(t *testing.T) {
	result := &entity.AnalysisResult{
		RulerStart: entity.Point{X: 0, Y: 500},
		RulerEnd:   entity.Point{X: 500, Y: 500},
		Measurements: []entity.Measurement{
			{Label: "총장", Start: entity.Point{X: 0, Y: 0}, End: entity.Point{X: 100, Y: 103}},
		},
	}

	calibrated := Calibrate(result)

	m := calibrated.Measurements[0]
	require.NotNil(t, m.ValueCm)
	require.InDelta(t, 14.4, *m.ValueCm, 1e-9)
	require.Equal(t, "14.4cm", m.DisplayValue)
}

func TestCalibrateForcesRulerLength(t *testing.T) {
	result := &entity.AnalysisResult{
		RulerStart:    entity.Point{X: 100, Y: 100},
		RulerEnd:      entity.Point{X: 600, Y: 100},
		RulerLengthCm: 45,
	}

	calibrated := Calibrate(result)

	require.Equal(t, 50.0, calibrated.RulerLengthCm)
}

func TestCalibrateDegenerateRuler(t *testing.T) {
	result := &entity.AnalysisResult{
		RulerStart: entity.Point{X: 300, Y: 300},
		RulerEnd:   entity.Point{X: 300, Y: 300},
		Measurements: []entity.Measurement{
			{Label: "어깨너비", Start: entity.Point{X: 100, Y: 100}, End: entity.Point{X: 400, Y: 100}},
			{Label: "총장", Start: entity.Point{X: 250, Y: 50}, End: entity.Point{X: 250, Y: 900}},
		},
	}

	calibrated := Calibrate(result)

	require.Equal(t, 50.0, calibrated.RulerLengthCm)
	for _, m := range calibrated.Measurements {
		require.Nil(t, m.ValueCm)
		require.Equal(t, UncalibratedSentinel, m.DisplayValue)
	}
}

func TestCalibrateZeroLengthMeasurementPassesThrough(t *testing.T) {
	result := &entity.AnalysisResult{
		RulerStart: entity.Point{X: 0, Y: 500},
		RulerEnd:   entity.Point{X: 500, Y: 500},
		Measurements: []entity.Measurement{
			{Label: "밑단단면", Start: entity.Point{X: 200, Y: 200}, End: entity.Point{X: 200, Y: 200}},
		},
	}

	calibrated := Calibrate(result)

	m := calibrated.Measurements[0]
	require.NotNil(t, m.ValueCm)
	require.Equal(t, 0.0, *m.ValueCm)
	require.Equal(t, "0.0cm", m.DisplayValue)
}

func TestCalibrateIsIdempotent(t *testing.T) {
	result := &entity.AnalysisResult{
		RulerStart:    entity.Point{X: 0, Y: 500},
		RulerEnd:      entity.Point{X: 500, Y: 500},
		RulerLengthCm: 45,
		Measurements: []entity.Measurement{
			{Label: "가슴단면", Start: entity.Point{X: 0, Y: 800}, End: entity.Point{X: 250, Y: 800}},
		},
	}

	once := Calibrate(result)
	twice := Calibrate(once)

	require.Equal(t, *once.Measurements[0].ValueCm, *twice.Measurements[0].ValueCm)
	require.Equal(t, once.Measurements[0].DisplayValue, twice.Measurements[0].DisplayValue)
	require.Equal(t, once.RulerLengthCm, twice.RulerLengthCm)
}

func TestCalibrateDoesNotMutateInput(t *testing.T) {
	result := &entity.AnalysisResult{
		RulerStart:    entity.Point{X: 0, Y: 500},
		RulerEnd:      entity.Point{X: 500, Y: 500},
		RulerLengthCm: 45,
		Measurements: []entity.Measurement{
			{Label: "가슴단면", Start: entity.Point{X: 0, Y: 800}, End: entity.Point{X: 250, Y: 800}},
		},
	}

	Calibrate(result)

	require.Equal(t, 45.0, result.RulerLengthCm)
	require.Nil(t, result.Measurements[0].ValueCm)
	require.Empty(t, result.Measurements[0].DisplayValue)
}

func TestCalibrateNil(t *testing.T) {
	require.Nil(t, Calibrate(nil))
}
