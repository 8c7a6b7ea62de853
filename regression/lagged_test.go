package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaggedLayout(t *testing.T) {
	x := []float64{10, 20, 30, 40, 50}

	m, err := Lagged(x, 2)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	// Row i targets x[2+i]; column 0 is lag 1, column 1 is lag 2.
	assert.Equal(t, 20.0, m.At(0, 0))
	assert.Equal(t, 10.0, m.At(0, 1))
	assert.Equal(t, 30.0, m.At(1, 0))
	assert.Equal(t, 20.0, m.At(1, 1))
	assert.Equal(t, 40.0, m.At(2, 0))
	assert.Equal(t, 30.0, m.At(2, 1))
}

func TestLaggedErrors(t *testing.T) {
	x := []float64{1, 2, 3}

	_, err := Lagged(x, 0)
	assert.Error(t, err)

	_, err = Lagged(x, 3)
	assert.Error(t, err)

	_, err = Lagged(x, 4)
	assert.Error(t, err)
}
