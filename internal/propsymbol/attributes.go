// Package propsymbol turns a collection of city dew point features into
// proportional symbols and steps them through the decades.
package propsymbol

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb/geojson"
)

const (
	// AttributeMarker is the substring every dew point attribute carries.
	AttributeMarker = "dp"

	FirstDecade = 1960
	LastDecade  = 2020
	DecadeStep  = 10

	// CityProperty names the display name property of a city feature.
	CityProperty = "City"
)

// AttributeName returns the property name holding the dew point for year.
func AttributeName(year int) string {
	return fmt.Sprintf("%s_%d", AttributeMarker, year)
}

// DecadeAttributes lists every attribute name in decade order.
func DecadeAttributes() []string {
	names := make([]string, 0, (LastDecade-FirstDecade)/DecadeStep+1)
	for year := FirstDecade; year <= LastDecade; year += DecadeStep {
		names = append(names, AttributeName(year))
	}
	return names
}

// ExtractAttributes returns the decade attributes present on the first
// feature, in decade order. Other features are not inspected.
func ExtractAttributes(fc *geojson.FeatureCollection) ([]string, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, ErrNoFeatures
	}

	props := fc.Features[0].Properties
	attributes := make([]string, 0, len(props))
	for _, name := range DecadeAttributes() {
		if _, ok := props[name]; ok {
			attributes = append(attributes, name)
		}
	}

	if len(attributes) == 0 {
		return nil, ErrNoAttributes
	}
	return attributes, nil
}

// Year returns the decade part of an attribute name, e.g. "1960" for "dp_1960".
func Year(attribute string) string {
	parts := strings.Split(attribute, "_")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Value reads a numeric attribute from props. The second result reports
// whether the attribute is present and numeric; a zero reading counts as present.
func Value(props geojson.Properties, attribute string) (float64, bool) {
	raw, ok := props[attribute]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
