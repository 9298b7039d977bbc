package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// DefaultSource is the dataset path used when none is configured.
const DefaultSource = "data/dewPointCities.geojson"

const userAgent = "dewpoint-map/1.0 (github.com/Zachdehooge/dewpoint-map)"

// Sentinel error kinds returned by Load.
var (
	ErrFetch  = errors.New("fetch dew point data")
	ErrDecode = errors.New("decode dew point data")
	ErrEmpty  = errors.New("dew point data has no features")
)

// Loader reads the city dew point FeatureCollection from a file or URL.
type Loader struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewLoader creates a Loader whose HTTP requests time out after timeout.
// Consecutive HTTP failures open a circuit breaker for breakerTimeout.
func NewLoader(timeout, breakerTimeout time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := gobreaker.Settings{
		Name:        "dewpoint-source",
		MaxRequests: 1,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("source", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return &Loader{
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Load fetches source and parses it as a GeoJSON FeatureCollection.
// Sources starting with http:// or https:// are requested; anything else is a file path.
func (l *Loader) Load(ctx context.Context, source string) (*geojson.FeatureCollection, error) {
	var (
		body []byte
		err  error
	)
	if isRemote(source) {
		body, err = l.fetchRemote(ctx, source)
	} else {
		body, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("%w: read %s: %w", ErrFetch, source, err)
		}
	}
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(fc.Features) == 0 {
		return nil, ErrEmpty
	}

	l.logger.Debug("Loaded dew point data",
		zap.String("source", source),
		zap.Int("features", len(fc.Features)),
		zap.Int("bytes", len(body)))
	return fc, nil
}

func (l *Loader) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	result, err := l.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/geo+json, application/json")

		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP GET failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body failed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			snip := body
			if len(snip) > 200 {
				snip = snip[:200]
			}
			return nil, fmt.Errorf("source returned HTTP %d: %s", resp.StatusCode, string(snip))
		}
		return body, nil
	})
	if err != nil {
		l.logger.Warn("Dew point fetch failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return result.([]byte), nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
