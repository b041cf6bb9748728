package geohash

import "encoding/json"

// Feature is the GeoJSON view of a decoded hash.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// PointGeometry is a GeoJSON Point. Coordinates are [longitude, latitude].
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureProperties carries the error bound of the decoded cell.
type FeatureProperties struct {
	LongitudeError float64 `json:"longitude_error"`
	LatitudeError  float64 `json:"latitude_error"`
}

// Feature returns d as a GeoJSON Feature.
func (d Decoded) Feature() Feature {
	return Feature{
		Type: "Feature",
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{d.Center.Longitude, d.Center.Latitude},
		},
		Properties: FeatureProperties{
			LongitudeError: d.Error.Longitude,
			LatitudeError:  d.Error.Latitude,
		},
	}
}

// MarshalJSON encodes d as its GeoJSON Feature.
func (d Decoded) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Feature())
}

// UnmarshalJSON reads a GeoJSON Feature produced by MarshalJSON.
func (d *Decoded) UnmarshalJSON(data []byte) error {
	var f Feature
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	d.Center = Point{Longitude: f.Geometry.Coordinates[0], Latitude: f.Geometry.Coordinates[1]}
	d.Error = Point{Longitude: f.Properties.LongitudeError, Latitude: f.Properties.LatitudeError}
	return nil
}
