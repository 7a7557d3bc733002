package election

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DivisionProperty is the GeoJSON property holding the electoral division name.
const DivisionProperty = "CED_NAME25"

// MapCentre frames a state on the map.
type MapCentre struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Zoom float64 `json:"zoom"`
}

// DefaultCentre frames the whole country.
var DefaultCentre = MapCentre{Lat: -25.5, Lon: 134.5, Zoom: 4}

var stateCentres = map[string]MapCentre{
	"NSW": {Lat: -32.0, Lon: 147.0, Zoom: 5},
	"VIC": {Lat: -37.0, Lon: 144.5, Zoom: 6},
	"QLD": {Lat: -22.0, Lon: 145.0, Zoom: 4},
	"WA":  {Lat: -26.0, Lon: 121.0, Zoom: 4},
	"SA":  {Lat: -30.0, Lon: 136.0, Zoom: 5},
	"TAS": {Lat: -42.0, Lon: 146.5, Zoom: 6},
	"NT":  {Lat: -19.5, Lon: 133.0, Zoom: 5},
	"ACT": {Lat: -35.5, Lon: 149.0, Zoom: 9},
}

// StateCentre returns the framing for a state abbreviation.
func StateCentre(state string) (MapCentre, bool) {
	c, ok := stateCentres[state]
	return c, ok
}

// CentreFor returns the framing for state. Unknown states are centred on the
// bounds of fc at DefaultCentre's zoom, or DefaultCentre when fc is empty.
func CentreFor(state string, fc *geojson.FeatureCollection) MapCentre {
	if c, ok := StateCentre(state); ok {
		return c
	}
	if b, ok := Bounds(fc); ok {
		centre := b.Center()
		return MapCentre{Lat: centre.Lat(), Lon: centre.Lon(), Zoom: DefaultCentre.Zoom}
	}
	return DefaultCentre
}

// Bounds returns the bounding box of every geometry in fc.
func Bounds(fc *geojson.FeatureCollection) (orb.Bound, bool) {
	if fc == nil {
		return orb.Bound{}, false
	}
	var bound orb.Bound
	found := false
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		if !found {
			bound = f.Geometry.Bound()
			found = true
			continue
		}
		bound = bound.Union(f.Geometry.Bound())
	}
	return bound, found
}

// LoadGeoJSON reads a FeatureCollection from path.
func LoadGeoJSON(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geojson %s: %w", path, err)
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON decodes a FeatureCollection.
func ParseGeoJSON(data []byte) (*geojson.FeatureCollection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}
	return fc, nil
}

// FilterDivisions returns a new collection holding only features whose
// DivisionProperty is in names. Feature order is preserved.
func FilterDivisions(fc *geojson.FeatureCollection, names map[string]struct{}) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	if fc == nil {
		return out
	}
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		name := f.Properties.MustString(DivisionProperty, "")
		if _, ok := names[name]; ok {
			out.Append(f)
		}
	}
	return out
}
