package propsymbol_test

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Zachdehooge/dewpoint-map/internal/propsymbol"
)

// city builds a point feature with every decade set to fill, then applies overrides.
func city(name string, lon, lat, fill float64, overrides map[string]any) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{lon, lat})
	f.Properties[propsymbol.CityProperty] = name
	for _, attribute := range propsymbol.DecadeAttributes() {
		f.Properties[attribute] = fill
	}
	for k, v := range overrides {
		f.Properties[k] = v
	}
	return f
}

func collection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	return fc
}

// scenario is the two city collection: A at 30 and B at 60 in 1960, 45 otherwise.
func scenario() *geojson.FeatureCollection {
	return collection(
		city("A", -93.26, 44.98, 45, map[string]any{"dp_1960": 30.0}),
		city("B", -90.07, 29.95, 45, map[string]any{"dp_1960": 60.0}),
	)
}
