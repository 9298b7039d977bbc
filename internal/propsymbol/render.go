package propsymbol

import (
	"fmt"
	"html"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Style holds the fixed circle marker options. Only the radius varies per attribute.
type Style struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fillOpacity"`
}

// DefaultStyle is the teal marker used for every city.
func DefaultStyle() Style {
	return Style{
		FillColor:   "#00827D",
		Color:       "#000",
		Weight:      1,
		Opacity:     1,
		FillOpacity: 0.75,
	}
}

// View is what a symbol displays for one attribute.
type View struct {
	Attribute string     `json:"attribute"`
	Radius    float64    `json:"radius"`
	Popup     string     `json:"popup"`
	Offset    [2]float64 `json:"offset"`
}

// Symbol is the rendered circle for one city. It reads, but does not own,
// the feature's properties.
type Symbol struct {
	City     string
	Location orb.Point
	View

	props geojson.Properties
}

// Lat returns the symbol's latitude.
func (s *Symbol) Lat() float64 { return s.Location.Lat() }

// Lon returns the symbol's longitude.
func (s *Symbol) Lon() float64 { return s.Location.Lon() }

// Value returns the feature's reading for attribute, if it has one.
func (s *Symbol) Value(attribute string) (float64, bool) {
	return Value(s.props, attribute)
}

// Renderer owns the symbols drawn for a feature collection.
type Renderer struct {
	scaler  *Scaler
	style   Style
	symbols []*Symbol
}

// NewRenderer creates one symbol per point feature, sized by attributes[0].
// Features with any other geometry are not drawn.
func NewRenderer(fc *geojson.FeatureCollection, attributes []string, scaler *Scaler, style Style) (*Renderer, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, ErrNoFeatures
	}
	if len(attributes) == 0 {
		return nil, ErrNoAttributes
	}

	r := &Renderer{scaler: scaler, style: style}
	for _, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}

		s := &Symbol{
			City:     f.Properties.MustString(CityProperty, ""),
			Location: point,
			props:    f.Properties,
		}
		if v, ok := Value(f.Properties, attributes[0]); ok {
			s.View = r.view(s.City, attributes[0], v)
		} else {
			// Placed but invisible until a decade with a reading is selected.
			s.View = View{Attribute: attributes[0], Popup: NoReadingPopup(s.City, attributes[0])}
		}
		r.symbols = append(r.symbols, s)
	}
	return r, nil
}

// Style returns the marker style shared by every symbol.
func (r *Renderer) Style() Style {
	return r.style
}

// Symbols returns the rendered symbols in feature order.
func (r *Renderer) Symbols() []*Symbol {
	return r.symbols
}

// Update resizes every symbol whose feature has a value for attribute and
// rebuilds its popup. Symbols without a value keep their current view.
func (r *Renderer) Update(attribute string) {
	for _, s := range r.symbols {
		if v, ok := r.viewFor(s, attribute); ok {
			s.View = v
		}
	}
}

// Frame holds, for one attribute, the view each symbol would take after
// Update. A nil entry means the symbol is left as it was.
type Frame struct {
	Attribute string  `json:"attribute"`
	Year      string  `json:"year"`
	Views     []*View `json:"views"`
}

// Frames precomputes a Frame for every attribute without touching the
// symbols' current state.
func (r *Renderer) Frames(attributes []string) []Frame {
	frames := make([]Frame, 0, len(attributes))
	for _, attribute := range attributes {
		frame := Frame{
			Attribute: attribute,
			Year:      Year(attribute),
			Views:     make([]*View, len(r.symbols)),
		}
		for i, s := range r.symbols {
			if v, ok := r.viewFor(s, attribute); ok {
				frame.Views[i] = &v
			}
		}
		frames = append(frames, frame)
	}
	return frames
}

func (r *Renderer) viewFor(s *Symbol, attribute string) (View, bool) {
	v, ok := Value(s.props, attribute)
	if !ok {
		return View{}, false
	}
	return r.view(s.City, attribute, v), true
}

func (r *Renderer) view(city, attribute string, value float64) View {
	radius := r.scaler.Radius(value)
	return View{
		Attribute: attribute,
		Radius:    radius,
		Popup:     PopupContent(city, attribute, value),
		Offset:    [2]float64{0, -radius / 2},
	}
}

// PopupContent builds the popup HTML for a city's reading.
func PopupContent(city, attribute string, value float64) string {
	return fmt.Sprintf("<p><b>City:</b> %s</p><p><b>Average dew point in %s:</b> %s°F</p>",
		html.EscapeString(city), Year(attribute), strconv.FormatFloat(value, 'f', -1, 64))
}

// NoReadingPopup builds the popup for a city with no reading for attribute.
func NoReadingPopup(city, attribute string) string {
	return fmt.Sprintf("<p><b>City:</b> %s</p><p><b>Average dew point in %s:</b> no reading</p>",
		html.EscapeString(city), Year(attribute))
}
