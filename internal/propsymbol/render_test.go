package propsymbol_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachdehooge/dewpoint-map/internal/propsymbol"
)

func newScenarioRenderer(t *testing.T) (*propsymbol.Renderer, []string) {
	t.Helper()
	fc := scenario()

	attrs, err := propsymbol.ExtractAttributes(fc)
	require.NoError(t, err)
	minValue, err := propsymbol.MinValue(fc)
	require.NoError(t, err)
	scaler, err := propsymbol.NewScaler(minValue)
	require.NoError(t, err)

	r, err := propsymbol.NewRenderer(fc, attrs, scaler, propsymbol.DefaultStyle())
	require.NoError(t, err)
	return r, attrs
}

func TestNewRenderer_Scenario(t *testing.T) {
	r, _ := newScenarioRenderer(t)
	symbols := r.Symbols()
	require.Len(t, symbols, 2)

	a, b := symbols[0], symbols[1]
	assert.Equal(t, "A", a.City)
	assert.Equal(t, "dp_1960", a.Attribute)
	assert.InDelta(t, 1.0083*5, a.Radius, 1e-12)
	assert.InDelta(t, 1.0083*math.Pow(60.0/30.0, 0.5715)*5, b.Radius, 1e-12)

	assert.Contains(t, a.Popup, "City:</b> A")
	assert.Contains(t, a.Popup, "Average dew point in 1960:</b> 30°F")
	assert.Equal(t,
		"<p><b>City:</b> A</p><p><b>Average dew point in 1960:</b> 30°F</p>", a.Popup)
	assert.Equal(t, [2]float64{0, -a.Radius / 2}, a.Offset)

	assert.InDelta(t, 44.98, a.Lat(), 1e-9)
	assert.InDelta(t, -93.26, a.Lon(), 1e-9)
}

func TestNewRenderer_SkipsNonPointFeatures(t *testing.T) {
	line := geojson.NewFeature(orb.LineString{{0, 0}, {1, 1}})
	line.Properties["dp_1960"] = 10.0
	fc := collection(city("A", 0, 0, 40, nil), line)

	scaler, err := propsymbol.NewScaler(10)
	require.NoError(t, err)
	r, err := propsymbol.NewRenderer(fc, []string{"dp_1960"}, scaler, propsymbol.DefaultStyle())
	require.NoError(t, err)
	assert.Len(t, r.Symbols(), 1)
}

func TestNewRenderer_Errors(t *testing.T) {
	scaler, err := propsymbol.NewScaler(10)
	require.NoError(t, err)

	_, err = propsymbol.NewRenderer(collection(), []string{"dp_1960"}, scaler, propsymbol.DefaultStyle())
	assert.ErrorIs(t, err, propsymbol.ErrNoFeatures)

	_, err = propsymbol.NewRenderer(scenario(), nil, scaler, propsymbol.DefaultStyle())
	assert.ErrorIs(t, err, propsymbol.ErrNoAttributes)
}

func TestRenderer_UpdateAllSymbolsConsistent(t *testing.T) {
	r, _ := newScenarioRenderer(t)
	r.Update("dp_1990")

	for _, s := range r.Symbols() {
		assert.Equal(t, "dp_1990", s.Attribute)
		assert.InDelta(t, 1.0083*math.Pow(45.0/30.0, 0.5715)*5, s.Radius, 1e-12)
		assert.Contains(t, s.Popup, "Average dew point in 1990:</b> 45°F")
	}
}

func TestRenderer_UpdateIdempotent(t *testing.T) {
	r, _ := newScenarioRenderer(t)

	r.Update("dp_2000")
	once := make([]propsymbol.View, 0, len(r.Symbols()))
	for _, s := range r.Symbols() {
		once = append(once, s.View)
	}

	r.Update("dp_2000")
	for i, s := range r.Symbols() {
		assert.Equal(t, once[i], s.View)
	}
}

func TestRenderer_UpdateSkipsMissingKeepsZero(t *testing.T) {
	missing := city("Gone", 0, 0, 40, nil)
	delete(missing.Properties, "dp_1980")
	zero := city("Zero", 1, 1, 40, map[string]any{"dp_1980": 0.0})
	fc := collection(missing, zero)

	scaler, err := propsymbol.NewScaler(40)
	require.NoError(t, err)
	r, err := propsymbol.NewRenderer(fc, propsymbol.DecadeAttributes(), scaler, propsymbol.DefaultStyle())
	require.NoError(t, err)

	before := r.Symbols()[0].View
	r.Update("dp_1980")

	assert.Equal(t, before, r.Symbols()[0].View)
	assert.Equal(t, "dp_1980", r.Symbols()[1].Attribute)
	assert.Zero(t, r.Symbols()[1].Radius)
	assert.Contains(t, r.Symbols()[1].Popup, "1980:</b> 0°F")
}

func TestRenderer_FramesMatchUpdateWithoutMutating(t *testing.T) {
	r, attrs := newScenarioRenderer(t)
	before := r.Symbols()[1].View

	frames := r.Frames(attrs)
	require.Len(t, frames, len(attrs))
	assert.Equal(t, before, r.Symbols()[1].View)

	for _, frame := range frames {
		r.Update(frame.Attribute)
		assert.Equal(t, propsymbol.Year(frame.Attribute), frame.Year)
		for i, s := range r.Symbols() {
			require.NotNil(t, frame.Views[i])
			assert.Equal(t, s.View, *frame.Views[i])
		}
	}
}

func TestNewRenderer_MissingFirstDecadeHasNoReading(t *testing.T) {
	gap := city("B", 1, 1, 45, nil)
	delete(gap.Properties, "dp_1960")
	fc := collection(city("A", 0, 0, 30, nil), gap)

	scaler, err := propsymbol.NewScaler(30)
	require.NoError(t, err)
	r, err := propsymbol.NewRenderer(fc, propsymbol.DecadeAttributes(), scaler, propsymbol.DefaultStyle())
	require.NoError(t, err)

	b := r.Symbols()[1]
	assert.Equal(t, "dp_1960", b.Attribute)
	assert.Zero(t, b.Radius)
	assert.Equal(t, [2]float64{0, 0}, b.Offset)
	assert.Equal(t,
		"<p><b>City:</b> B</p><p><b>Average dew point in 1960:</b> no reading</p>", b.Popup)
	assert.NotContains(t, b.Popup, "°F")

	frames := r.Frames(propsymbol.DecadeAttributes())
	assert.Nil(t, frames[0].Views[1])
	require.NotNil(t, frames[1].Views[1])

	r.Update("dp_1970")
	assert.Contains(t, b.Popup, "1970:</b> 45°F")
	assert.InDelta(t, 1.0083*math.Pow(45.0/30.0, 0.5715)*5, b.Radius, 1e-12)
}

func TestPopupContent_EscapesCity(t *testing.T) {
	got := propsymbol.PopupContent("<A&B>", "dp_2010", 51.25)
	assert.Equal(t,
		"<p><b>City:</b> &lt;A&amp;B&gt;</p><p><b>Average dew point in 2010:</b> 51.25°F</p>", got)
}
