package models

import "encoding/json"

// EncodeRequest is the body of POST /encode. Location accepts every
// supported location shape; Precision falls back to the configured default.
type EncodeRequest struct {
	Location  json.RawMessage `json:"location"`
	Precision *int            `json:"precision,omitempty"`
}

type EncodeResponse struct {
	Geohash string `json:"geohash"`
}

type NeighborsResponse struct {
	Geohash   string   `json:"geohash"`
	Neighbors []string `json:"neighbors"` // n, ne, e, se, s, sw, w, nw
}

type BBoxResponse struct {
	Geohash string       `json:"geohash"`
	BBox    [][2]float64 `json:"bbox"` // [lon, lat] corners: bottom-left, top-left, top-right, bottom-right
}

type ErrorResponse struct {
	Error string `json:"error"`
}
