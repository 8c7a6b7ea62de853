package kmtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcludeDecisionTable(t *testing.T) {
	tests := []struct {
		linearRejected bool
		logRejected    bool
		want           Conclusion
	}{
		{true, false, UseLogarithms},
		{false, true, UseLevels},
		{true, true, InconclusiveBoth},
		{false, false, InconclusiveNeither},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, conclude(tt.linearRejected, tt.logRejected))
	}
}

func TestSuiteWithDrift(t *testing.T) {
	series := gaussianWalk(42, 100, 0.5, 1.0, 100)

	result, err := Suite(series, DefaultSuiteConfig())
	require.NoError(t, err)

	assert.True(t, result.HasDrift)
	require.Contains(t, result.Tests, "v1")
	require.Contains(t, result.Tests, "v2")
	assert.Len(t, result.Tests, 2)

	assert.Equal(t, TestV1, result.Tests["v1"].Type)
	assert.Equal(t, TestV2, result.Tests["v2"].Type)

	assert.Contains(t, []Conclusion{
		UseLevels, UseLogarithms, InconclusiveBoth, InconclusiveNeither,
	}, result.Conclusion)

	// The conclusion follows the fixed table applied to the pair.
	want := conclude(result.Tests["v1"].RejectNull, result.Tests["v2"].RejectNull)
	assert.Equal(t, want, result.Conclusion)
}

func TestSuiteWithoutDrift(t *testing.T) {
	series := gaussianWalk(7, 100, 0.0, 1.0, 100)

	cfg := DefaultSuiteConfig()
	cfg.HasDrift = false

	result, err := Suite(series, cfg)
	require.NoError(t, err)

	assert.False(t, result.HasDrift)
	require.Contains(t, result.Tests, "u1")
	require.Contains(t, result.Tests, "u2")

	want := conclude(result.Tests["u1"].Reject05, result.Tests["u2"].Reject05)
	assert.Equal(t, want, result.Conclusion)
}

func TestSuiteNilConfigDefaults(t *testing.T) {
	series := gaussianWalk(11, 100, 0.5, 1.0, 100)

	result, err := Suite(series, nil)
	require.NoError(t, err)

	assert.True(t, result.HasDrift)
	assert.Contains(t, result.Tests, "v1")
}

func TestSuiteProgressMessages(t *testing.T) {
	series := gaussianWalk(13, 100, 0.5, 1.0, 100)

	var messages []string
	cfg := DefaultSuiteConfig()
	cfg.Progress = func(msg string) { messages = append(messages, msg) }

	result, err := Suite(series, cfg)
	require.NoError(t, err)

	// Opening line, one per test, and the conclusion.
	require.GreaterOrEqual(t, len(messages), 4)
	assert.Contains(t, messages[0], "drift assumed")
	assert.Contains(t, messages[1], "V1")
	assert.Contains(t, messages[2], "V2")

	joined := strings.Join(messages, "\n")
	assert.Contains(t, joined, string(result.Conclusion))
}

func TestSuiteProgressNeverAffectsResult(t *testing.T) {
	series := gaussianWalk(17, 100, 0.5, 1.0, 100)

	silent, err := Suite(series, DefaultSuiteConfig())
	require.NoError(t, err)

	cfg := DefaultSuiteConfig()
	cfg.Progress = func(string) {}
	verbose, err := Suite(series, cfg)
	require.NoError(t, err)

	assert.Equal(t, silent.Conclusion, verbose.Conclusion)
	assert.InDelta(t, silent.Tests["v1"].Statistic, verbose.Tests["v1"].Statistic, 1e-12)
	assert.InDelta(t, silent.Tests["v2"].Statistic, verbose.Tests["v2"].Statistic, 1e-12)
}

func TestSuiteZeroValueConfigForcesOrderZero(t *testing.T) {
	// A zero-value config is a legitimate request for order 0, not for
	// automatic selection; that is what DefaultSuiteConfig is for.
	series := gaussianWalk(29, 100, 0.5, 1.0, 100)

	result, err := Suite(series, &SuiteConfig{HasDrift: true})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Tests["v1"].Lag)
	assert.Equal(t, 0, result.Tests["v2"].Lag)
}

func TestSuiteFixedLagPassedToBothTests(t *testing.T) {
	series := gaussianWalk(23, 100, 0.5, 1.0, 100)

	cfg := DefaultSuiteConfig()
	cfg.Lag = 2

	result, err := Suite(series, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Tests["v1"].Lag)
	assert.Equal(t, 2, result.Tests["v2"].Lag)
}
