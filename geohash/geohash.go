// Package geohash encodes longitude/latitude pairs into base-32 geohash strings
// and derives decoded centers, neighbor cells and bounding boxes from them.
package geohash

const (
	MinLon = -180.0
	MaxLon = 180.0
	MinLat = -90.0
	MaxLat = 90.0

	// DefaultPrecision is the hash length used when callers have no preference.
	DefaultPrecision = 9

	bitsPerChar = 5
)

// Point is a coordinate pair in degrees.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Decoded is the result of decoding a hash: the center of its cell and the
// half-width of the cell on each axis. The encoded coordinate lies within
// Center ± Error.
type Decoded struct {
	Center Point
	Error  Point
}

// interval is the running (min, max) range of one axis.
type interval struct {
	min, max float64
}

func (r *interval) mid() float64 {
	return (r.min + r.max) / 2
}

// split halves the interval around v, keeping the half that contains it.
// A value equal to the midpoint falls in the lower half.
func (r *interval) split(v float64) uint8 {
	mid := r.mid()
	if v > mid {
		r.min = mid
		return 1
	}
	r.max = mid
	return 0
}

// narrow keeps the upper half for bit 1 and the lower half otherwise.
func (r *interval) narrow(bit uint8) {
	mid := r.mid()
	if bit == 1 {
		r.min = mid
	} else {
		r.max = mid
	}
}

func (r *interval) halfWidth() float64 {
	return (r.max - r.min) / 2
}

// bounds holds the working state of a single encode or decode call.
// Even global bit steps refine longitude, odd steps latitude.
type bounds struct {
	lon, lat interval
}

func newBounds() bounds {
	return bounds{
		lon: interval{MinLon, MaxLon},
		lat: interval{MinLat, MaxLat},
	}
}

func (b *bounds) encodeBit(step int, p Point) uint8 {
	if step%2 == 0 {
		return b.lon.split(p.Longitude)
	}
	return b.lat.split(p.Latitude)
}

func (b *bounds) decodeBit(step int, bit uint8) {
	if step%2 == 0 {
		b.lon.narrow(bit)
	} else {
		b.lat.narrow(bit)
	}
}

// Encode returns the geohash of p with numberOfChars characters. A
// non-positive length yields an empty string. Coordinates are not validated.
func Encode(p Point, numberOfChars int) string {
	if numberOfChars <= 0 {
		return ""
	}

	b := newBounds()
	buf := make([]byte, numberOfChars)
	step := 0
	for i := range buf {
		var acc uint8
		for j := 0; j < bitsPerChar; j++ {
			acc = acc<<1 | b.encodeBit(step, p)
			step++
		}
		buf[i] = base32[acc]
	}
	return string(buf)
}

// Decode returns the center and error bound of the cell named by hash.
// Letters are matched case-insensitively; any other character outside the
// alphabet yields an *AlphabetError.
func Decode(hash string) (Decoded, error) {
	b := newBounds()
	step := 0
	for i := 0; i < len(hash); i++ {
		v, ok := symbolValue(hash[i])
		if !ok {
			return Decoded{}, newAlphabetError(hash, i)
		}
		for shift := bitsPerChar - 1; shift >= 0; shift-- {
			b.decodeBit(step, (v>>uint(shift))&1)
			step++
		}
	}

	return Decoded{
		Center: Point{Longitude: b.lon.mid(), Latitude: b.lat.mid()},
		Error:  Point{Longitude: b.lon.halfWidth(), Latitude: b.lat.halfWidth()},
	}, nil
}
