package spot

import "strconv"

// Spot is a saved map location. ID is derived from the coordinate pair and is
// the dedup key, not a random identifier.
type Spot struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	CreatedAt string  `json:"createdAt"`
}

// SpotID derives the identity of a favorite from its coordinates, so the same
// pin always maps to the same record.
func SpotID(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "-" + strconv.FormatFloat(lng, 'f', -1, 64)
}
