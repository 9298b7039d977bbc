package propsymbol

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/geojson"
)

// Flannery apparent-size compensation constants.
const (
	flanneryFactor   = 1.0083
	flanneryExponent = 0.5715

	// MinRadius is the radius, before compensation, of a symbol at the baseline value.
	MinRadius = 5.0
)

// MinValue returns the smallest dew point over every feature and every
// decade from FirstDecade to LastDecade. Missing readings are ignored.
func MinValue(fc *geojson.FeatureCollection) (float64, error) {
	if fc == nil || len(fc.Features) == 0 {
		return 0, ErrNoFeatures
	}

	minValue := math.Inf(1)
	found := false
	for _, f := range fc.Features {
		for year := FirstDecade; year <= LastDecade; year += DecadeStep {
			v, ok := Value(f.Properties, AttributeName(year))
			if !ok {
				continue
			}
			found = true
			minValue = math.Min(minValue, v)
		}
	}

	if !found {
		return 0, ErrNoValues
	}
	return minValue, nil
}

// Scaler sizes symbols relative to a single global baseline.
type Scaler struct {
	baseline float64
}

// NewScaler returns a Scaler for baseline. The baseline must be positive:
// zero divides by zero and a negative ratio has no real power.
func NewScaler(baseline float64) (*Scaler, error) {
	if !(baseline > 0) || math.IsInf(baseline, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveBaseline, baseline)
	}
	return &Scaler{baseline: baseline}, nil
}

// Baseline returns the normalization value.
func (s *Scaler) Baseline() float64 {
	return s.baseline
}

// Radius computes the compensated circle radius for value.
func (s *Scaler) Radius(value float64) float64 {
	return flanneryFactor * math.Pow(value/s.baseline, flanneryExponent) * MinRadius
}
