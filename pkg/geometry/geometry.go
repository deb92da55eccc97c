package geometry

import (
	"fmt"
	"math"

	"GarmentGolang/internal/entity"
)

// ReferenceRulerCm is the physical length of the reference ruler. The model
// is asked to report it too, but whatever it says is overwritten with this
// constant: the ruler in the photo is ground truth, the model's self-report
// is not.
const ReferenceRulerCm = 50.0

// UncalibratedSentinel marks measurements that could not be converted to
// centimeters because the ruler endpoints were missing or coincident.
const UncalibratedSentinel = "측정불가"

func Distance(a, b entity.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Calibrate derives centimeter values for every measurement from the ruler
// endpoints. It recomputes purely from raw coordinates, so running it again
// on an already calibrated result yields identical values. It never fails:
// a degenerate ruler produces sentinel display values instead of an error,
// and negative or zero-length measurements pass through as computed.
func Calibrate(result *entity.AnalysisResult) *entity.AnalysisResult {
	if result == nil {
		return nil
	}

	calibrated := *result
	calibrated.RulerLengthCm = ReferenceRulerCm
	calibrated.Measurements = make([]entity.Measurement, len(result.Measurements))
	copy(calibrated.Measurements, result.Measurements)

	rulerPixels := Distance(result.RulerStart, result.RulerEnd)
	if rulerPixels == 0 {
		for i := range calibrated.Measurements {
			calibrated.Measurements[i].ValueCm = nil
			calibrated.Measurements[i].DisplayValue = UncalibratedSentinel
		}
		return &calibrated
	}

	unitsPerCm := rulerPixels / ReferenceRulerCm
	for i := range calibrated.Measurements {
		m := &calibrated.Measurements[i]
		valueCm := math.Round(Distance(m.Start, m.End)/unitsPerCm*10) / 10
		m.ValueCm = &valueCm
		m.DisplayValue = fmt.Sprintf("%.1fcm", valueCm)
	}

	return &calibrated
}
