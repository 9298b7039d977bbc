// Package mapview describes the map viewport and base imagery the symbols are drawn on.
package mapview

import (
	"errors"
	"fmt"
)

// ErrInvalidView is returned when a viewport or tile layer is unusable.
var ErrInvalidView = errors.New("invalid map view")

const (
	DefaultLat  = 45.0
	DefaultLon  = -94.0
	DefaultZoom = 3

	DefaultTileURL = "https://tiles.stadiamaps.com/tiles/outdoors/{z}/{x}/{y}{r}.{ext}"
	DefaultTileExt = "png"

	DefaultAttribution = `&copy; <a href="https://www.stadiamaps.com/" target="_blank">Stadia Maps</a> ` +
		`&copy; <a href="https://openmaptiles.org/" target="_blank">OpenMapTiles</a> ` +
		`&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// TileLayer is the base imagery layer.
type TileLayer struct {
	URL         string `json:"url"`
	MinZoom     int    `json:"minZoom"`
	MaxZoom     int    `json:"maxZoom"`
	Attribution string `json:"attribution"`
	Ext         string `json:"ext"`
}

// Host is the single viewport the page opens with.
type Host struct {
	Center [2]float64 `json:"center"` // [lat, lon]
	Zoom   int        `json:"zoom"`
	Tiles  TileLayer  `json:"tiles"`
}

// Options sets the viewport and base tiles. Every field is applied as given,
// so a center of (0,0) or zoom 0 is honoured; start from DefaultOptions.
type Options struct {
	Lat         float64
	Lon         float64
	Zoom        int
	TileURL     string
	MinZoom     int
	MaxZoom     int
	Attribution string
}

// DefaultOptions is the continental North America view over Stadia outdoor tiles.
func DefaultOptions() Options {
	return Options{
		Lat:         DefaultLat,
		Lon:         DefaultLon,
		Zoom:        DefaultZoom,
		TileURL:     DefaultTileURL,
		MinZoom:     0,
		MaxZoom:     20,
		Attribution: DefaultAttribution,
	}
}

// New builds a Host from opts and validates it.
func New(opts Options) (*Host, error) {
	h := &Host{
		Center: [2]float64{opts.Lat, opts.Lon},
		Zoom:   opts.Zoom,
		Tiles: TileLayer{
			URL:         opts.TileURL,
			MinZoom:     opts.MinZoom,
			MaxZoom:     opts.MaxZoom,
			Attribution: opts.Attribution,
			Ext:         DefaultTileExt,
		},
	}

	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate checks the center is on the globe and the zoom is within the tile layer bounds.
func (h *Host) Validate() error {
	lat, lon := h.Center[0], h.Center[1]
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidView, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidView, lon)
	}
	if h.Tiles.MinZoom < 0 || h.Tiles.MinZoom > h.Tiles.MaxZoom {
		return fmt.Errorf("%w: zoom bounds [%d,%d]", ErrInvalidView, h.Tiles.MinZoom, h.Tiles.MaxZoom)
	}
	if h.Zoom < h.Tiles.MinZoom || h.Zoom > h.Tiles.MaxZoom {
		return fmt.Errorf("%w: zoom %d outside [%d,%d]", ErrInvalidView, h.Zoom, h.Tiles.MinZoom, h.Tiles.MaxZoom)
	}
	if h.Tiles.URL == "" {
		return fmt.Errorf("%w: empty tile url", ErrInvalidView)
	}
	return nil
}
