// Package seiscomp converts city features into the SeisComP cities XML layout.
package seiscomp

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Property keys read from every feature.
const (
	PropType       = "Type"
	PropCountry    = "Country"
	PropName       = "FINAL_name"
	PropPopulation = "population"
)

// CategoryCapital is the only Type value mapped to a category attribute.
const CategoryCapital = "capital"

var (
	// ErrMissingProperty is returned when a feature lacks a required property.
	ErrMissingProperty = errors.New("missing property")
	// ErrGeometry is returned when a feature is not a point.
	ErrGeometry = errors.New("feature geometry is not a point")
)

// Catalog is the XML root holding all cities.
type Catalog struct {
	XMLName xml.Name `xml:"seiscomp"`
	Cities  []City   `xml:"City"`
}

// City is a single populated place. Field order defines element order.
type City struct {
	Category   string `xml:"category,attr,omitempty"`
	CountryID  string `xml:"countryID,attr"`
	Name       string `xml:"name"`
	Population string `xml:"population"`
	Latitude   string `xml:"latitude"`
	Longitude  string `xml:"longitude"`
}

// FromFeatureCollection maps every feature of fc to a City, in order.
// The first feature that cannot be mapped fails the whole collection.
func FromFeatureCollection(fc *geojson.FeatureCollection) (*Catalog, error) {
	catalog := &Catalog{Cities: make([]City, 0, len(fc.Features))}

	for i, f := range fc.Features {
		city, err := CityFromFeature(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		catalog.Cities = append(catalog.Cities, city)
	}

	return catalog, nil
}

// CityFromFeature builds a City from a point feature.
func CityFromFeature(f *geojson.Feature) (City, error) {
	if f == nil {
		return City{}, ErrGeometry
	}

	point, ok := f.Geometry.(orb.Point)
	if !ok {
		return City{}, fmt.Errorf("%w: got %T", ErrGeometry, f.Geometry)
	}

	props := f.Properties

	kind, ok := props[PropType]
	if !ok {
		return City{}, fmt.Errorf("%w %q", ErrMissingProperty, PropType)
	}

	country, err := stringProperty(props, PropCountry)
	if err != nil {
		return City{}, err
	}

	name, err := stringProperty(props, PropName)
	if err != nil {
		return City{}, err
	}

	rawPopulation, ok := props[PropPopulation]
	if !ok {
		return City{}, fmt.Errorf("%w %q", ErrMissingProperty, PropPopulation)
	}
	population, err := FormatNumber(rawPopulation)
	if err != nil {
		return City{}, fmt.Errorf("property %q: %w", PropPopulation, err)
	}

	city := City{
		CountryID:  country,
		Name:       name,
		Population: population,
		Latitude:   formatFloat(point.Lat()),
		Longitude:  formatFloat(point.Lon()),
	}
	if s, ok := kind.(string); ok && s == CategoryCapital {
		city.Category = "C"
	}

	return city, nil
}

// Encode writes the catalog as indented XML without a declaration.
func (c *Catalog) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func stringProperty(props geojson.Properties, key string) (string, error) {
	v, ok := props[key]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingProperty, key)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("property %q: expected string, got %T", key, v)
	}

	return s, nil
}
