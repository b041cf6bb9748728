package geohash

import "math"

// Direction selects one of the eight cells surrounding a hash.
type Direction int

// Directions in the order Neighbors returns them.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return "unknown"
	}
	return directionNames[d]
}

// offsets are (dLon, dLat) unit steps indexed by Direction.
var offsets = [...][2]float64{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},
}

// EnsureValidLon wraps lon into [-180, 180]. Values in range are returned
// unchanged, so both 180 and -180 are kept as given.
func EnsureValidLon(lon float64) float64 {
	if lon >= MinLon && lon <= MaxLon {
		return lon
	}
	lon = math.Mod(lon-MinLon, MaxLon-MinLon)
	if lon < 0 {
		lon += MaxLon - MinLon
	}
	return lon + MinLon
}

// EnsureValidLat clamps lat to [-90, 90]; latitude does not wrap.
func EnsureValidLat(lat float64) float64 {
	if lat > MaxLat {
		return MaxLat
	}
	if lat < MinLat {
		return MinLat
	}
	return lat
}

func neighborOf(d Decoded, dir Direction, length int) string {
	off := offsets[dir]
	p := Point{
		Longitude: EnsureValidLon(d.Center.Longitude + off[0]*d.Error.Longitude*2),
		Latitude:  EnsureValidLat(d.Center.Latitude + off[1]*d.Error.Latitude*2),
	}
	return Encode(p, length)
}

// Neighbor returns the hash of the adjacent cell in direction dir, with the
// same length as hash.
func Neighbor(hash string, dir Direction) (string, error) {
	d, err := Decode(hash)
	if err != nil {
		return "", err
	}
	return neighborOf(d, dir, len(hash)), nil
}

// Neighbors returns the eight cells around hash ordered N, NE, E, SE, S, SW, W, NW.
// Beyond a pole latitude clamps, so polar cells list their own row there.
func Neighbors(hash string) ([]string, error) {
	d, err := Decode(hash)
	if err != nil {
		return nil, err
	}
	neighbors := make([]string, 0, len(offsets))
	for dir := range offsets {
		neighbors = append(neighbors, neighborOf(d, Direction(dir), len(hash)))
	}
	return neighbors, nil
}

// BBox returns the corners of the cell named by hash in the order
// bottom-left, top-left, top-right, bottom-right.
func BBox(hash string) ([4]Point, error) {
	d, err := Decode(hash)
	if err != nil {
		return [4]Point{}, err
	}
	corner := func(dLon, dLat float64) Point {
		return Point{
			Longitude: EnsureValidLon(d.Center.Longitude + dLon*d.Error.Longitude),
			Latitude:  EnsureValidLat(d.Center.Latitude + dLat*d.Error.Latitude),
		}
	}
	return [4]Point{
		corner(-1, -1),
		corner(-1, 1),
		corner(1, 1),
		corner(1, -1),
	}, nil
}
