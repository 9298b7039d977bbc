// Package app assembles the map, data, and symbols for one page generation.
package app

import (
	"context"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/Zachdehooge/dewpoint-map/internal/mapview"
	"github.com/Zachdehooge/dewpoint-map/internal/propsymbol"
)

// Source loads the dew point FeatureCollection. *fetcher.Loader satisfies it.
type Source interface {
	Load(ctx context.Context, source string) (*geojson.FeatureCollection, error)
}

// State is everything one page generation needs. It is built once, in a
// fixed order, and then only the Controller mutates the selection.
type State struct {
	Host       *mapview.Host
	Collection *geojson.FeatureCollection
	Attributes []string
	Scaler     *propsymbol.Scaler
	Renderer   *propsymbol.Renderer
	Controller *propsymbol.Controller
}

// Build loads source and derives attributes, baseline, symbols and controls in that order.
func Build(ctx context.Context, host *mapview.Host, src Source, source string, logger *zap.Logger) (*State, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fc, err := src.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	attributes, err := propsymbol.ExtractAttributes(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract attributes: %w", err)
	}

	baseline, err := propsymbol.MinValue(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to compute baseline: %w", err)
	}
	scaler, err := propsymbol.NewScaler(baseline)
	if err != nil {
		return nil, fmt.Errorf("failed to compute baseline: %w", err)
	}

	renderer, err := propsymbol.NewRenderer(fc, attributes, scaler, propsymbol.DefaultStyle())
	if err != nil {
		return nil, fmt.Errorf("failed to render symbols: %w", err)
	}

	controller, err := propsymbol.NewController(attributes, renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to create sequence controls: %w", err)
	}

	logger.Info("Built proportional symbols",
		zap.String("source", source),
		zap.Int("features", len(fc.Features)),
		zap.Int("symbols", len(renderer.Symbols())),
		zap.Strings("attributes", attributes),
		zap.Float64("baseline", baseline))

	return &State{
		Host:       host,
		Collection: fc,
		Attributes: attributes,
		Scaler:     scaler,
		Renderer:   renderer,
		Controller: controller,
	}, nil
}

// Frames returns the precomputed symbol views for every attribute.
func (s *State) Frames() []propsymbol.Frame {
	return s.Renderer.Frames(s.Attributes)
}

// SelectDecade moves the controller to the attribute for year, e.g. 1980.
func (s *State) SelectDecade(year int) error {
	want := propsymbol.AttributeName(year)
	for i, attribute := range s.Attributes {
		if attribute == want {
			_, err := s.Controller.Seek(i)
			return err
		}
	}
	return fmt.Errorf("%w: no attribute %s", propsymbol.ErrIndexOutOfRange, want)
}
