package measurementService

import (
	"testing"

	"GarmentGolang/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func cm(v float64) *float64 {
	return &v
}

func newTestService(g *fakeGemini) *measurementService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &measurementService{
		log:    logger,
		gemini: g,
		utils:  newTestUtils(),
	}
}

func shirtResult() *entity.AnalysisResult {
	return &entity.AnalysisResult{
		ClothingType:  entity.ClothingShirt,
		RulerStart:    entity.Point{X: 0, Y: 500},
		RulerEnd:      entity.Point{X: 500, Y: 500},
		RulerLengthCm: 50,
		Measurements: []entity.Measurement{
			{Label: "어깨너비", Start: entity.Point{X: 250, Y: 200}, End: entity.Point{X: 750, Y: 200}, ValueCm: cm(50)},
			{Label: "가슴단면", Start: entity.Point{X: 230, Y: 350}, End: entity.Point{X: 770, Y: 350}, ValueCm: cm(54)},
			{Label: "소매길이", Start: entity.Point{X: 750, Y: 200}, End: entity.Point{X: 880, Y: 520}, ValueCm: cm(34.5)},
			{Label: "총장", Start: entity.Point{X: 500, Y: 150}, End: entity.Point{X: 500, Y: 850}, ValueCm: cm(70)},
		},
	}
}

func TestValidateCompleteShirtPasses(t *testing.T) {
	s := newTestService(nil)

	outcome := s.Validate(shirtResult())

	require.True(t, outcome.Passed)
	require.Empty(t, outcome.MissingFields)
	require.Empty(t, outcome.InvalidValues)
}

func TestValidateMissingSleeveLength(t *testing.T) {
	s := newTestService(nil)
	result := shirtResult()
	result.Measurements = result.Measurements[:2] // drop 소매길이 and 총장

	outcome := s.Validate(result)

	require.False(t, outcome.Passed)
	require.Contains(t, outcome.MissingFields, "소매길이")
	require.Contains(t, outcome.MissingFields, "총장")
}

func TestValidateLabelSubstringTolerance(t *testing.T) {
	s := newTestService(nil)
	result := shirtResult()
	result.Measurements[0].Label = "어깨너비 (직선)"

	outcome := s.Validate(result)

	require.True(t, outcome.Passed)
}

func TestValidateNegativeValue(t *testing.T) {
	s := newTestService(nil)
	result := shirtResult()
	result.Measurements[1].ValueCm = cm(-3)

	outcome := s.Validate(result)

	require.False(t, outcome.Passed)
	require.Len(t, outcome.InvalidValues, 1)
	require.Contains(t, outcome.InvalidValues[0], "가슴단면")
}

func TestValidateNilValue(t *testing.T) {
	s := newTestService(nil)
	result := shirtResult()
	result.Measurements[3].ValueCm = nil

	outcome := s.Validate(result)

	require.False(t, outcome.Passed)
	require.Contains(t, outcome.InvalidValues[0], "총장")
}

func TestValidateOutOfBoundsEndpoint(t *testing.T) {
	s := newTestService(nil)
	result := shirtResult()
	result.Measurements[0].Start.X = 1500

	outcome := s.Validate(result)

	require.False(t, outcome.Passed)
	require.Len(t, outcome.InvalidValues, 1)
	require.Contains(t, outcome.InvalidValues[0], "어깨너비")
}

func TestValidatePantsRequiredSet(t *testing.T) {
	s := newTestService(nil)
	result := &entity.AnalysisResult{
		ClothingType: entity.ClothingPants,
		Measurements: []entity.Measurement{
			{Label: "허리단면", ValueCm: cm(38)},
			{Label: "총장", ValueCm: cm(100)},
		},
	}

	outcome := s.Validate(result)

	require.False(t, outcome.Passed)
	require.ElementsMatch(t, []string{"엉덩이단면", "허벅지단면", "밑단단면"}, outcome.MissingFields)
}

func TestValidateNilResult(t *testing.T) {
	s := newTestService(nil)

	outcome := s.Validate(nil)

	require.False(t, outcome.Passed)
	require.Contains(t, outcome.MissingFields, "result")
}
