package measurementService

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMeasurementPromptDeterministic(t *testing.T) {
	require.Equal(t, buildMeasurementPrompt(), buildMeasurementPrompt())
}

func TestBuildMeasurementPromptCoversContract(t *testing.T) {
	prompt := buildMeasurementPrompt()

	// calibration rules
	require.Contains(t, prompt, "rulerStart")
	require.Contains(t, prompt, "rulerEnd")
	require.Contains(t, prompt, "50cm")

	// five-category taxonomy
	for _, ct := range []string{"SHIRT", "PANTS", "SKIRT", "DRESS", "OUTER"} {
		require.Contains(t, prompt, ct)
	}

	// axis constraints and anti-ambiguity rules
	require.Contains(t, prompt, "수직")
	require.Contains(t, prompt, "수평")
	require.Contains(t, prompt, "주름")

	// output contract
	require.Contains(t, prompt, "0~1000")
	require.Contains(t, prompt, "clothingType")
	require.Contains(t, prompt, "measurements")
}
