package measurementService

import (
	"encoding/base64"
	"testing"

	"GarmentGolang/internal/api/measurement"
	"GarmentGolang/internal/entity"
	"GarmentGolang/pkg/gemini"
	"GarmentGolang/pkg/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeGemini struct {
	response   string
	err        error
	calls      int
	lastPrompt string
	lastModel  entity.GarmentModel
	lastImage  []byte
}

func (f *fakeGemini) AnalyzeImage(_ context.Context, imageData []byte, prompt string, model entity.GarmentModel) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastModel = model
	f.lastImage = imageData
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestUtils() utils.IUtils {
	return utils.New()
}

func encodedImage() string {
	return base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes"))
}

func TestAnalyzeFullPipeline(t *testing.T) {
	fake := &fakeGemini{response: "```json\n" + sampleResponseJSON + "\n```"}
	s := newTestService(fake)

	result, err := s.Analyze(context.Background(), encodedImage(), entity.ModelFlash)
	require.NoError(t, err)

	require.Equal(t, 1, fake.calls)
	require.Equal(t, entity.ModelFlash, fake.lastModel)
	require.Equal(t, []byte("fake-jpeg-bytes"), fake.lastImage)
	require.Contains(t, fake.lastPrompt, "rulerStart")
	require.Contains(t, fake.lastPrompt, "50cm")

	require.Equal(t, entity.ClothingShirt, result.ClothingType)
	require.Equal(t, 50.0, result.RulerLengthCm)
	// ruler spans 500 grid units for 50cm, measurement spans 500 units
	m := result.Measurements[0]
	require.NotNil(t, m.ValueCm)
	require.Equal(t, 50.0, *m.ValueCm)
	require.Equal(t, "50.0cm", m.DisplayValue)
}

func TestAnalyzeStripsDataURLPrefix(t *testing.T) {
	fake := &fakeGemini{response: sampleResponseJSON}
	s := newTestService(fake)

	payload := "data:image/jpeg;base64," + encodedImage()
	_, err := s.Analyze(context.Background(), payload, entity.ModelPro)
	require.NoError(t, err)

	require.Equal(t, entity.ModelPro, fake.lastModel)
	require.Equal(t, []byte("fake-jpeg-bytes"), fake.lastImage)
}

func TestAnalyzeInvalidImagePayload(t *testing.T) {
	fake := &fakeGemini{response: sampleResponseJSON}
	s := newTestService(fake)

	_, err := s.Analyze(context.Background(), "not-base64!!!", entity.ModelFlash)
	require.ErrorIs(t, err, measurement.ErrInvalidImagePayload)
	require.Equal(t, 0, fake.calls)
}

func TestAnalyzeUpstreamFailureNoRetry(t *testing.T) {
	upstream := &gemini.UpstreamError{Reason: gemini.ReasonPermissionDenied}
	fake := &fakeGemini{err: upstream}
	s := newTestService(fake)

	_, err := s.Analyze(context.Background(), encodedImage(), entity.ModelFlash)

	var ue *gemini.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, gemini.ReasonPermissionDenied, ue.Reason)
	require.True(t, ue.CredentialRelated())
	require.Equal(t, 1, fake.calls)
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	fake := &fakeGemini{response: "I could not find a garment in this image."}
	s := newTestService(fake)

	_, err := s.Analyze(context.Background(), encodedImage(), entity.ModelFlash)
	require.ErrorIs(t, err, measurement.ErrMalformedResponse)
	require.Equal(t, 1, fake.calls)
}

func TestAnalyzeDegenerateRulerYieldsSentinels(t *testing.T) {
	fake := &fakeGemini{response: `{
		"clothingType": "SKIRT",
		"rulerStart": {"x": 300, "y": 300},
		"rulerEnd": {"x": 300, "y": 300},
		"rulerLength": 50,
		"measurements": [
			{"label": "총장", "startPoint": {"x": 500, "y": 100}, "endPoint": {"x": 500, "y": 900}}
		]
	}`}
	s := newTestService(fake)

	result, err := s.Analyze(context.Background(), encodedImage(), entity.ModelFlash)
	require.NoError(t, err)

	require.Nil(t, result.Measurements[0].ValueCm)
	require.NotEmpty(t, result.Measurements[0].DisplayValue)
	require.NotContains(t, result.Measurements[0].DisplayValue, "cm")
}
