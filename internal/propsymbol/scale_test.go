package propsymbol_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachdehooge/dewpoint-map/internal/propsymbol"
)

func TestMinValue_GlobalAcrossFeaturesAndDecades(t *testing.T) {
	fc := collection(
		city("A", 0, 0, 50, map[string]any{"dp_2010": 22.5}),
		city("B", 1, 1, 40, map[string]any{"dp_1970": 18.0}),
		city("C", 2, 2, 60, nil),
	)

	minValue, err := propsymbol.MinValue(fc)
	require.NoError(t, err)
	assert.Equal(t, 18.0, minValue)
}

func TestMinValue_Scenario(t *testing.T) {
	minValue, err := propsymbol.MinValue(scenario())
	require.NoError(t, err)
	assert.Equal(t, 30.0, minValue)
}

func TestMinValue_IgnoresMissingAndNonDecadeValues(t *testing.T) {
	f := city("A", 0, 0, 40, map[string]any{"dp_1965": 1.0})
	delete(f.Properties, "dp_1960")

	minValue, err := propsymbol.MinValue(collection(f))
	require.NoError(t, err)
	assert.Equal(t, 40.0, minValue)
}

func TestMinValue_Errors(t *testing.T) {
	_, err := propsymbol.MinValue(collection())
	assert.ErrorIs(t, err, propsymbol.ErrNoFeatures)

	f := city("A", 0, 0, 40, nil)
	for _, a := range propsymbol.DecadeAttributes() {
		delete(f.Properties, a)
	}
	_, err = propsymbol.MinValue(collection(f))
	assert.ErrorIs(t, err, propsymbol.ErrNoValues)
}

func TestNewScaler_RejectsNonPositiveBaseline(t *testing.T) {
	for _, baseline := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		_, err := propsymbol.NewScaler(baseline)
		assert.ErrorIs(t, err, propsymbol.ErrNonPositiveBaseline, "baseline %v", baseline)
	}
}

func TestScaler_RadiusAtBaseline(t *testing.T) {
	s, err := propsymbol.NewScaler(30)
	require.NoError(t, err)

	assert.InDelta(t, 1.0083*5, s.Radius(30), 1e-12)
	assert.InDelta(t, 5.0415, s.Radius(30), 1e-9)
	assert.Equal(t, 30.0, s.Baseline())
}

func TestScaler_RadiusFormula(t *testing.T) {
	s, err := propsymbol.NewScaler(30)
	require.NoError(t, err)

	want := 1.0083 * math.Pow(2, 0.5715) * 5
	assert.InDelta(t, want, s.Radius(60), 1e-12)
	assert.InDelta(t, 7.49, s.Radius(60), 0.01)
}

func TestScaler_Monotonic(t *testing.T) {
	s, err := propsymbol.NewScaler(12)
	require.NoError(t, err)

	prev := s.Radius(12)
	for v := 12.5; v <= 80; v += 0.5 {
		r := s.Radius(v)
		assert.Greater(t, r, prev, "radius(%v)", v)
		prev = r
	}
}
