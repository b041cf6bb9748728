package geohash

import (
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		chars int
		want  string
	}{
		{"algiers region", Point{4.2122126, 36.4511093}, 7, "sn6zrge"},
		{"algiers region default", Point{4.2122126, 36.4511093}, DefaultPrecision, "sn6zrgepp"},
		{"asturias", Point{-5.6, 42.6}, 5, "ezs42"},
		{"origin goes below midpoint", Point{0, 0}, 5, "7zzzz"},
		{"north east corner", Point{180, 90}, 3, "zzz"},
		{"south west corner", Point{-180, -90}, 3, "000"},
		{"zero length", Point{4.2, 36.4}, 0, ""},
		{"negative length", Point{4.2, 36.4}, -3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.point, tt.chars))
		})
	}
}

func TestEncodePrefixStable(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		p := randomPoint(r)
		long := Encode(p, 12)
		for n := 1; n < 12; n++ {
			require.Equal(t, long[:n], Encode(p, n), "point %+v length %d", p, n)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	p := Point{Longitude: 151.2153, Latitude: -33.8568}
	first := Encode(p, 11)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Encode(p, 11))
	}
}

func TestDecode(t *testing.T) {
	d, err := Decode("ezs42")
	require.NoError(t, err)

	assert.Equal(t, -5.60302734375, d.Center.Longitude)
	assert.Equal(t, 42.60498046875, d.Center.Latitude)
	assert.Equal(t, 0.02197265625, d.Error.Longitude)
	assert.Equal(t, 0.02197265625, d.Error.Latitude)
}

func TestDecodeCaseInsensitive(t *testing.T) {
	lower, err := Decode("sndbuh")
	require.NoError(t, err)
	upper, err := Decode("SNDBUH")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestDecodeEmpty(t *testing.T) {
	d, err := Decode("")
	require.NoError(t, err)
	assert.Equal(t, Point{0, 0}, d.Center)
	assert.Equal(t, Point{180, 90}, d.Error)
}

func TestDecodeInvalidCharacter(t *testing.T) {
	for _, hash := range []string{"sndb!h", "sndbah", "i", "sndbuhé", "sn db"} {
		t.Run(hash, func(t *testing.T) {
			_, err := Decode(hash)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCharacter))

			var alphaErr *AlphabetError
			require.True(t, errors.As(err, &alphaErr))
			assert.Equal(t, hash, alphaErr.Hash)
		})
	}

	_, err := Decode("sndb!h")
	var alphaErr *AlphabetError
	require.True(t, errors.As(err, &alphaErr))
	assert.Equal(t, 4, alphaErr.Index)
	assert.Equal(t, '!', alphaErr.Char)
	assert.Contains(t, err.Error(), `'!' at index 4`)
}

func TestRoundTripWithinErrorBound(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		p := randomPoint(r)
		for n := 1; n <= 12; n++ {
			d, err := Decode(Encode(p, n))
			require.NoError(t, err)
			assert.LessOrEqual(t, abs(d.Center.Longitude-p.Longitude), d.Error.Longitude, "lon %+v n=%d", p, n)
			assert.LessOrEqual(t, abs(d.Center.Latitude-p.Latitude), d.Error.Latitude, "lat %+v n=%d", p, n)
		}
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("0123456789bcdefghjkmnpqrstuvwxyz"))
	assert.True(t, Valid("SNDBUH"))
	assert.True(t, Valid(""))
	assert.False(t, Valid("a"))
	assert.False(t, Valid("sndb!h"))
}

func TestAlphabetTable(t *testing.T) {
	assert.Len(t, base32, 32)
	for _, c := range "ailo" {
		assert.False(t, strings.ContainsRune(base32, c))
	}
	for i := 0; i < len(base32); i++ {
		v, ok := symbolValue(base32[i])
		require.True(t, ok)
		assert.Equal(t, uint8(i), v)
	}
}

func TestDecodedFeatureJSON(t *testing.T) {
	d, err := Decode("ezs42")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [-5.60302734375, 42.60498046875]},
		"properties": {"longitude_error": 0.02197265625, "latitude_error": 0.02197265625}
	}`, string(raw))

	var back Decoded
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func randomPoint(r *rand.Rand) Point {
	return Point{
		Longitude: r.Float64()*360 - 180,
		Latitude:  r.Float64()*180 - 90,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
