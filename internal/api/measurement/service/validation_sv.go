package measurementService

import (
	"fmt"
	"math"
	"strings"

	"GarmentGolang/internal/entity"
)

const (
	coordMin = 0
	coordMax = 1000
)

// requiredLabels maps each clothing type to the measurement labels a
// complete result must carry.
var requiredLabels = map[entity.ClothingType][]string{
	entity.ClothingShirt: {"어깨너비", "가슴단면", "소매길이", "총장"},
	entity.ClothingOuter: {"어깨너비", "가슴단면", "소매길이", "총장"},
	entity.ClothingPants: {"허리단면", "엉덩이단면", "허벅지단면", "밑단단면", "총장"},
	entity.ClothingSkirt: {"허리단면", "엉덩이단면", "밑단단면", "총장"},
	entity.ClothingDress: {"어깨너비", "가슴단면", "허리단면", "소매길이", "총장"},
}

// Validate checks a calibrated result for structural completeness and
// numeric sanity. Advisory only: the analyze flow never gates on it; the
// batch runner reports it per image.
//
// A required label counts as present when some actual label contains it as
// a substring, which tolerates phrasing variance from the model ("어깨너비
// (자연)" still matches "어깨너비"). The containment check is a known-loose
// heuristic and can mismatch on coincidental substrings; it is kept as is
// on purpose.
func (s *measurementService) Validate(result *entity.AnalysisResult) entity.ValidationOutcome {
	outcome := entity.ValidationOutcome{
		MissingFields: []string{},
		InvalidValues: []string{},
	}

	if result == nil {
		outcome.MissingFields = append(outcome.MissingFields, "result")
		return outcome
	}

	for _, required := range requiredLabels[result.ClothingType] {
		found := false
		for _, m := range result.Measurements {
			if strings.Contains(m.Label, required) {
				found = true
				break
			}
		}
		if !found {
			outcome.MissingFields = append(outcome.MissingFields, required)
		}
	}

	for _, m := range result.Measurements {
		if m.ValueCm == nil || *m.ValueCm <= 0 || math.IsNaN(*m.ValueCm) {
			outcome.InvalidValues = append(outcome.InvalidValues, fmt.Sprintf("%s: measured value is missing or not positive", m.Label))
			continue
		}
		if pointOutOfBounds(m.Start) || pointOutOfBounds(m.End) {
			outcome.InvalidValues = append(outcome.InvalidValues, fmt.Sprintf("%s: endpoint outside the 0-1000 grid", m.Label))
		}
	}

	outcome.Passed = len(outcome.MissingFields) == 0 && len(outcome.InvalidValues) == 0
	return outcome
}

func pointOutOfBounds(p entity.Point) bool {
	return p.X < coordMin || p.X > coordMax || p.Y < coordMin || p.Y > coordMax
}
