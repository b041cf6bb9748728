package location

import (
	"errors"
	"testing"

	"geohash-service/geohash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testLon = 4.2122126
	testLat = 36.4511093
)

func TestEncodeSameHashForEveryShape(t *testing.T) {
	want := geohash.Encode(geohash.Point{Longitude: testLon, Latitude: testLat}, 7)
	require.Equal(t, "sn6zrge", want)

	feature := GeoJSONPoint{Coordinates: []float64{testLon, testLat}}
	shapes := map[string]Location{
		"array":              Array{testLon, testLat},
		"lat,lon string":     LatLonString{Lat: testLat, Lon: testLon},
		"wkt string":         WKTString{Lon: testLon, Lat: testLat},
		"geojson point":      GeoJSONPoint{Coordinates: []float64{testLon, testLat}},
		"geojson feature":    GeoJSONFeature{Geometry: &feature},
		"lon/lat fields":     LonLatFields{Lon: testLon, Lat: testLat},
		"longitude/latitude": LongitudeLatitudeFields{Longitude: testLon, Latitude: testLat},
	}
	for name, loc := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := Encode(loc, 7)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeJSONSameHashForEveryShape(t *testing.T) {
	docs := map[string]string{
		"array":              `[4.2122126, 36.4511093]`,
		"lat,lon string":     `"36.4511093,4.2122126"`,
		"wkt string":         `"POINT (4.2122126 36.4511093)"`,
		"geojson point":      `{"type": "Point", "coordinates": [4.2122126, 36.4511093]}`,
		"geojson feature":    `{"type": "Feature", "geometry": {"type": "Point", "coordinates": [4.2122126, 36.4511093]}, "properties": {}}`,
		"lon/lat fields":     `{"lon": 4.2122126, "lat": 36.4511093}`,
		"longitude/latitude": `{"longitude": 4.2122126, "latitude": 36.4511093}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			got, err := EncodeJSON([]byte(doc), 7)
			require.NoError(t, err)
			assert.Equal(t, "sn6zrge", got)
		})
	}
}

func TestEncodeString(t *testing.T) {
	for _, s := range []string{"36.4511093,4.2122126", "POINT (4.2122126 36.4511093)"} {
		got, err := EncodeString(s, 7)
		require.NoError(t, err)
		assert.Equal(t, "sn6zrge", got)
	}
}

func TestParseString(t *testing.T) {
	loc, err := ParseString("-33.8568,+151.2153")
	require.NoError(t, err)
	assert.Equal(t, LatLonString{Lat: -33.8568, Lon: 151.2153}, loc)

	loc, err = ParseString("POINT (-.5 12)")
	require.NoError(t, err)
	assert.Equal(t, WKTString{Lon: -0.5, Lat: 12}, loc)
}

func TestParseStringFormatErrors(t *testing.T) {
	for _, s := range []string{"Boom !", "", "36.45, 4.21", "POINT(4.21 36.45)", "4.21;36.45", "1e3,2"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseString(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFormat))

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, s, formatErr.Input)
		})
	}
}

func TestParseJSONFormatErrors(t *testing.T) {
	docs := []string{
		`{}`,
		`"Boom !"`,
		`{"type": "Feature"}`,
		`{"type": "Point"}`,
		`{"type": "Point", "coordinates": [4.2]}`,
		`{"type": "Point", "coordinates": ["4.2", "36.4"]}`,
		`{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}}`,
		`{"lon": "4.2", "lat": 36.4}`,
		`{"longitude": 4.2}`,
		`[4.2]`,
		`[]`,
		`42`,
		`null`,
		`true`,
		`{not json`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			_, err := EncodeJSON([]byte(doc), 7)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFormat), err.Error())
		})
	}
}

func TestNormalizeFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
	}{
		{"nil", nil},
		{"short array", Array{1}},
		{"point without coordinates", GeoJSONPoint{}},
		{"feature without geometry", GeoJSONFeature{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.loc)
			assert.True(t, errors.Is(err, ErrFormat))

			_, err = Encode(tt.loc, 9)
			assert.True(t, errors.Is(err, ErrFormat))
		})
	}
}

func TestParseJSONPicksGeoJSONBeforeFields(t *testing.T) {
	loc, err := ParseJSON([]byte(`{"type": "Point", "coordinates": [1, 2], "lon": 3, "lat": 4}`))
	require.NoError(t, err)
	assert.Equal(t, GeoJSONPoint{Coordinates: []float64{1, 2}}, loc)

	loc, err = ParseJSON([]byte(`{"lon": 1, "lat": 2, "longitude": 3, "latitude": 4}`))
	require.NoError(t, err)
	assert.Equal(t, LonLatFields{Lon: 1, Lat: 2}, loc)
}
