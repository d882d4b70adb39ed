// Package ingest loads weather bundles from local files or stdin.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nhollman/breeze/schema"
)

// StdinPath selects stdin as the bundle source.
const StdinPath = "-"

// ReadBundle decodes a weather bundle from the given JSON file path.
// A path of "-" reads from stdin. Missing observation fields stay nil so the
// engine can apply neutral defaults downstream.
func ReadBundle(path string) (*schema.WeatherBundle, error) {
	var reader io.Reader
	if path == StdinPath {
		reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open weather bundle %q: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	return DecodeBundle(reader)
}

// DecodeBundle decodes a weather bundle from a reader.
func DecodeBundle(r io.Reader) (*schema.WeatherBundle, error) {
	var bundle schema.WeatherBundle
	dec := json.NewDecoder(r)
	if err := dec.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("failed to decode weather bundle: %w", err)
	}
	if err := Validate(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Validate checks a decoded bundle for minimal usability. A bundle needs at
// least a current observation or one hourly sample to be scoreable.
func Validate(bundle *schema.WeatherBundle) error {
	if bundle == nil {
		return fmt.Errorf("weather bundle is nil")
	}
	if isEmptySample(bundle.Current) && len(bundle.Hourly) == 0 {
		return fmt.Errorf("weather bundle has no current observation and no hourly forecast")
	}
	return nil
}

// isEmptySample reports whether every observation field is absent.
func isEmptySample(s schema.WeatherSample) bool {
	return s.Temperature == nil &&
		s.FeelsLike == nil &&
		s.Humidity == nil &&
		s.WindSpeed == nil &&
		s.PrecipChance == nil &&
		s.UVIndex == nil &&
		s.Visibility == nil &&
		s.AirQuality == nil &&
		s.Pollen == nil &&
		s.Pressure == nil
}
