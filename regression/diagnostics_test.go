package regression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLjungBoxAutocorrelated(t *testing.T) {
	// Heavy AR(1) structure should be flagged decisively.
	x := ar1(10, 200, 0.9)

	result := LjungBox(x, 10, 0)
	require.NotNil(t, result)

	assert.Equal(t, 10, result.Lags)
	assert.Equal(t, 10, result.DOF)
	assert.Greater(t, result.Statistic, 0.0)
	assert.Less(t, result.PValue, 0.05)
}

func TestLjungBoxWhiteNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	x := make([]float64, 200)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	result := LjungBox(x, 10, 0)
	require.NotNil(t, result)

	assert.GreaterOrEqual(t, result.PValue, 0.0)
	assert.LessOrEqual(t, result.PValue, 1.0)
	t.Logf("white noise Ljung-Box: Q=%.3f p=%.3f", result.Statistic, result.PValue)
}

func TestLjungBoxDOFFloor(t *testing.T) {
	x := ar1(12, 50, 0.5)

	// fitdf at or above lags still leaves one degree of freedom.
	result := LjungBox(x, 5, 7)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.DOF)
}

func TestLjungBoxDegenerateInput(t *testing.T) {
	assert.Nil(t, LjungBox([]float64{1, 2, 3}, 10, 0))
	assert.Nil(t, LjungBox(ar1(13, 50, 0.5), 0, 0))
}

func TestAutocorrelations(t *testing.T) {
	x := ar1(14, 100, 0.8)

	acf := autocorrelations(x, 5)
	require.Len(t, acf, 6)
	assert.Equal(t, 1.0, acf[0])

	for k := 1; k <= 5; k++ {
		assert.LessOrEqual(t, acf[k], 1.0)
		assert.GreaterOrEqual(t, acf[k], -1.0)
	}
}

func TestAutocorrelationsConstant(t *testing.T) {
	x := []float64{3, 3, 3, 3, 3, 3}

	acf := autocorrelations(x, 3)
	assert.Equal(t, []float64{1, 0, 0, 0}, acf)
}
