// Package location reduces the supported location representations to a
// geohash.Point and encodes them.
package location

import (
	"errors"
	"fmt"

	"geohash-service/geohash"
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("location: unsupported format")

// FormatError reports a location that matches none of the supported shapes.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("location: %s", e.Reason)
	}
	return fmt.Sprintf("location: %s: %q", e.Reason, e.Input)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatError(input, reason string) error {
	return &FormatError{Input: input, Reason: reason}
}

// Location is one of the supported representations: Array, LatLonString,
// WKTString, GeoJSONPoint, GeoJSONFeature, LonLatFields or
// LongitudeLatitudeFields.
type Location interface {
	location()
}

// Array is a [lon, lat] pair, as used by Elasticsearch geo points.
type Array []float64

// LatLonString is a "lat,lon" string.
type LatLonString struct {
	Lat, Lon float64
}

// WKTString is a "POINT (lon lat)" well-known text primitive.
type WKTString struct {
	Lon, Lat float64
}

// GeoJSONPoint is a GeoJSON Point geometry. Coordinates are [lon, lat].
type GeoJSONPoint struct {
	Coordinates []float64 `json:"coordinates"`
}

// GeoJSONFeature is a GeoJSON Feature wrapping a Point geometry.
type GeoJSONFeature struct {
	Geometry *GeoJSONPoint `json:"geometry"`
}

// LonLatFields is an object with lon and lat keys.
type LonLatFields struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// LongitudeLatitudeFields is an object with longitude and latitude keys.
type LongitudeLatitudeFields struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (Array) location()                   {}
func (LatLonString) location()            {}
func (WKTString) location()               {}
func (GeoJSONPoint) location()            {}
func (GeoJSONFeature) location()          {}
func (LonLatFields) location()            {}
func (LongitudeLatitudeFields) location() {}

// Normalize returns the coordinate pair described by loc.
func Normalize(loc Location) (geohash.Point, error) {
	switch l := loc.(type) {
	case Array:
		if len(l) < 2 {
			return geohash.Point{}, formatError("", fmt.Sprintf("array needs 2 coordinates, got %d", len(l)))
		}
		return geohash.Point{Longitude: l[0], Latitude: l[1]}, nil
	case LatLonString:
		return geohash.Point{Longitude: l.Lon, Latitude: l.Lat}, nil
	case WKTString:
		return geohash.Point{Longitude: l.Lon, Latitude: l.Lat}, nil
	case GeoJSONPoint:
		if len(l.Coordinates) < 2 {
			return geohash.Point{}, formatError("", "GeoJSON Point without coordinates")
		}
		return geohash.Point{Longitude: l.Coordinates[0], Latitude: l.Coordinates[1]}, nil
	case GeoJSONFeature:
		if l.Geometry == nil {
			return geohash.Point{}, formatError("", "GeoJSON Feature without Point geometry")
		}
		return Normalize(*l.Geometry)
	case LonLatFields:
		return geohash.Point{Longitude: l.Lon, Latitude: l.Lat}, nil
	case LongitudeLatitudeFields:
		return geohash.Point{Longitude: l.Longitude, Latitude: l.Latitude}, nil
	case nil:
		return geohash.Point{}, formatError("", "missing location")
	default:
		return geohash.Point{}, formatError("", fmt.Sprintf("unknown location type %T", loc))
	}
}

// Encode normalizes loc and returns its geohash with numberOfChars characters.
func Encode(loc Location, numberOfChars int) (string, error) {
	p, err := Normalize(loc)
	if err != nil {
		return "", err
	}
	return geohash.Encode(p, numberOfChars), nil
}

// EncodeString parses s as a "lat,lon" or WKT point and encodes it.
func EncodeString(s string, numberOfChars int) (string, error) {
	loc, err := ParseString(s)
	if err != nil {
		return "", err
	}
	return Encode(loc, numberOfChars)
}

// EncodeJSON parses a JSON location document and encodes it.
func EncodeJSON(raw []byte, numberOfChars int) (string, error) {
	loc, err := ParseJSON(raw)
	if err != nil {
		return "", err
	}
	return Encode(loc, numberOfChars)
}
