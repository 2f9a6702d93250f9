package session

import (
	"bytes"
	"strconv"
)

// Number is a float64 that tolerates legacy payloads where form inputs were
// persisted as strings. A JSON number or quoted number decodes normally;
// anything else decodes as 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Session is one logged surf outing. ID and CreatedAt are assigned at
// creation and never change.
type Session struct {
	ID         string   `json:"id"`
	CreatedAt  string   `json:"createdAt"`
	Date       string   `json:"date"`
	Location   string   `json:"location"`
	WaveHeight Number   `json:"waveHeight"`
	Duration   Number   `json:"duration"`
	Board      string   `json:"board"`
	Rating     Number   `json:"rating"`
	Conditions string   `json:"conditions"`
	Crowd      string   `json:"crowd"`
	Notes      string   `json:"notes,omitempty"`
	Photos     []string `json:"photos"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Date       *string  `json:"date"`
	Location   *string  `json:"location"`
	WaveHeight *Number  `json:"waveHeight"`
	Duration   *Number  `json:"duration"`
	Board      *string  `json:"board"`
	Rating     *Number  `json:"rating"`
	Conditions *string  `json:"conditions"`
	Crowd      *string  `json:"crowd"`
	Notes      *string  `json:"notes"`
	Photos     []string `json:"photos"`
}

// MaxPhotos bounds the photo references attached to a single session.
const MaxPhotos = 5

var Boards = []string{"Shortboard", "Longboard", "Fish", "Funboard", "Gun", "SUP", "Bodyboard", "Other"}

var Conditions = []string{"poor", "fair", "good", "excellent"}

var CrowdLevels = []string{"empty", "light", "moderate", "crowded", "packed"}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ValidBoard reports whether v is one of the known board types.
func ValidBoard(v string) bool { return contains(Boards, v) }

func ValidConditions(v string) bool { return contains(Conditions, v) }

func ValidCrowd(v string) bool { return contains(CrowdLevels, v) }
