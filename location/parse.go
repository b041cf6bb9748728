package location

import (
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"
)

var (
	latLonPattern = regexp.MustCompile(`^([+-]?(?:\d*\.)?\d+),([+-]?(?:\d*\.)?\d+)$`)
	wktPattern    = regexp.MustCompile(`^POINT \(([+-]?(?:\d*\.)?\d+) ([+-]?(?:\d*\.)?\d+)\)$`)
)

// ParseString parses a "lat,lon" geo point string or a "POINT (lon lat)"
// WKT primitive.
func ParseString(s string) (Location, error) {
	if m := latLonPattern.FindStringSubmatch(s); m != nil {
		lat, lon, err := parsePair(s, m[1], m[2])
		if err != nil {
			return nil, err
		}
		return LatLonString{Lat: lat, Lon: lon}, nil
	}
	if m := wktPattern.FindStringSubmatch(s); m != nil {
		lon, lat, err := parsePair(s, m[1], m[2])
		if err != nil {
			return nil, err
		}
		return WKTString{Lon: lon, Lat: lat}, nil
	}
	return nil, formatError(s, "no pattern match for location")
}

func parsePair(input, a, b string) (float64, float64, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, formatError(input, err.Error())
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, formatError(input, err.Error())
	}
	return x, y, nil
}

// ParseJSON classifies a JSON location document. Arrays, strings, GeoJSON
// Point and Feature objects, and objects with lon/lat or longitude/latitude
// keys are recognized, checked in that order.
func ParseJSON(raw []byte) (Location, error) {
	if !gjson.ValidBytes(raw) {
		return nil, formatError(string(raw), "invalid JSON")
	}
	return parseResult(gjson.ParseBytes(raw))
}

func parseResult(res gjson.Result) (Location, error) {
	switch {
	case res.IsArray():
		coords, err := numbers(res)
		if err != nil {
			return nil, err
		}
		return Array(coords), nil
	case res.Type == gjson.String:
		return ParseString(res.Str)
	case res.IsObject():
		return parseObject(res)
	default:
		return nil, formatError(res.Raw, "invalid location parameter")
	}
}

func parseObject(res gjson.Result) (Location, error) {
	switch res.Get("type").String() {
	case "Point":
		return parsePoint(res)
	case "Feature":
		geometry := res.Get("geometry")
		if !geometry.IsObject() || geometry.Get("type").String() != "Point" {
			return nil, formatError(res.Raw, "GeoJSON Feature without Point geometry")
		}
		point, err := parsePoint(geometry)
		if err != nil {
			return nil, err
		}
		return GeoJSONFeature{Geometry: &point}, nil
	}

	if lon, lat := res.Get("lon"), res.Get("lat"); lon.Exists() && lat.Exists() {
		if lon.Type != gjson.Number || lat.Type != gjson.Number {
			return nil, formatError(res.Raw, "lon and lat must be numbers")
		}
		return LonLatFields{Lon: lon.Float(), Lat: lat.Float()}, nil
	}
	if lon, lat := res.Get("longitude"), res.Get("latitude"); lon.Exists() && lat.Exists() {
		if lon.Type != gjson.Number || lat.Type != gjson.Number {
			return nil, formatError(res.Raw, "longitude and latitude must be numbers")
		}
		return LongitudeLatitudeFields{Longitude: lon.Float(), Latitude: lat.Float()}, nil
	}
	return nil, formatError(res.Raw, "invalid location parameter")
}

func parsePoint(res gjson.Result) (GeoJSONPoint, error) {
	coords := res.Get("coordinates")
	if !coords.IsArray() {
		return GeoJSONPoint{}, formatError(res.Raw, "GeoJSON Point without coordinates")
	}
	values, err := numbers(coords)
	if err != nil {
		return GeoJSONPoint{}, err
	}
	return GeoJSONPoint{Coordinates: values}, nil
}

// numbers reads a JSON array of at least two numbers.
func numbers(res gjson.Result) ([]float64, error) {
	elems := res.Array()
	if len(elems) < 2 {
		return nil, formatError(res.Raw, "expected [longitude, latitude]")
	}
	values := make([]float64, 0, len(elems))
	for _, e := range elems {
		if e.Type != gjson.Number {
			return nil, formatError(res.Raw, "coordinates must be numbers")
		}
		values = append(values, e.Float())
	}
	return values, nil
}
