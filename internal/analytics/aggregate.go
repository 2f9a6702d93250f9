package analytics

import (
	"math"
	"time"

	"backend-surfbuddy/internal/session"
)

// Window is the caller-supplied time range, anchored to "now" at call time.
type Window int

const (
	WindowAll Window = iota
	Window3Months
	Window6Months
	Window12Months
)

// ParseWindow maps the query values used by the UI onto a Window. Unknown
// values fall back to all time.
func ParseWindow(s string) Window {
	switch s {
	case "3months":
		return Window3Months
	case "6months":
		return Window6Months
	case "1year", "12months":
		return Window12Months
	default:
		return WindowAll
	}
}

// Months is the number of calendar-month buckets charted for the window. The
// all-time view still charts the trailing twelve months.
func (w Window) Months() int {
	switch w {
	case Window3Months:
		return 3
	case Window6Months:
		return 6
	default:
		return 12
	}
}

// MonthBucket is one calendar-month aggregation unit for trend charts.
type MonthBucket struct {
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	Sessions      int     `json:"sessions"`
	Hours         float64 `json:"hours"`
	AvgRating     float64 `json:"avgRating"`
	AvgWaveHeight float64 `json:"avgWaveHeight"`
}

// CategoryCount is one category's share in a distribution, kept in a slice so
// first-seen order survives serialization.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// Summary holds the headline statistics for a session collection.
type Summary struct {
	TotalSessions int              `json:"totalSessions"`
	TotalHours    float64          `json:"totalHours"`
	AvgRating     float64          `json:"avgRating"`
	AvgWaveHeight float64          `json:"avgWaveHeight"`
	BestSession   *session.Session `json:"bestSession,omitempty"`
}

// parseDate accepts the date-only form written by the session form as well as
// full timestamps found in older records.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FilterByWindow keeps sessions whose date falls within [now-window, now].
// WindowAll keeps everything; sessions with unparsable dates are dropped from
// bounded windows.
func FilterByWindow(sessions []session.Session, w Window, now time.Time) []session.Session {
	if w == WindowAll {
		return sessions
	}
	cutoff := now.AddDate(0, -w.Months(), 0)
	kept := make([]session.Session, 0, len(sessions))
	for _, s := range sessions {
		d, ok := parseDate(s.Date)
		if !ok {
			continue
		}
		if d.Before(cutoff) || d.After(now) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// MonthlyBuckets partitions sessions into monthCount consecutive calendar
// months ending at now's month, oldest first. A session belongs to exactly one
// bucket, matched on both month and year of its date.
func MonthlyBuckets(sessions []session.Session, monthCount int, now time.Time) []MonthBucket {
	if monthCount < 1 {
		return []MonthBucket{}
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthCount - 1), 0)
	buckets := make([]MonthBucket, 0, monthCount)

	for i := 0; i < monthCount; i++ {
		m := first.AddDate(0, i, 0)

		var count int
		var hours, ratingSum, waveSum float64
		for _, s := range sessions {
			d, ok := parseDate(s.Date)
			if !ok || d.Month() != m.Month() || d.Year() != m.Year() {
				continue
			}
			count++
			hours += float64(s.Duration)
			ratingSum += float64(s.Rating)
			waveSum += float64(s.WaveHeight)
		}

		b := MonthBucket{Month: m.Format("Jan"), Year: m.Year(), Sessions: count, Hours: round1(hours)}
		if count > 0 {
			b.AvgRating = round1(ratingSum / float64(count))
			b.AvgWaveHeight = round1(waveSum / float64(count))
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// DistributionBy counts occurrences of a categorical field ("board",
// "conditions" or "crowd") in first-seen order.
func DistributionBy(sessions []session.Session, field string) []CategoryCount {
	index := map[string]int{}
	counts := []CategoryCount{}
	for _, s := range sessions {
		v := categoryValue(s, field)
		if v == "" {
			continue
		}
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, CategoryCount{Name: v, Count: 1})
	}
	return counts
}

func categoryValue(s session.Session, field string) string {
	switch field {
	case "board":
		return s.Board
	case "conditions":
		return s.Conditions
	case "crowd":
		return s.Crowd
	default:
		return ""
	}
}

// SummaryStats computes totals and means over the collection, guarding the
// divisions so an empty collection yields zeros and no best session. The best
// session is the one with the highest rating; ties keep the first occurrence.
func SummaryStats(sessions []session.Session) Summary {
	out := Summary{TotalSessions: len(sessions)}
	if len(sessions) == 0 {
		return out
	}

	var ratingSum, waveSum float64
	for i := range sessions {
		s := sessions[i]
		out.TotalHours += float64(s.Duration)
		ratingSum += float64(s.Rating)
		waveSum += float64(s.WaveHeight)
		if out.BestSession == nil || s.Rating > out.BestSession.Rating {
			out.BestSession = &sessions[i]
		}
	}
	out.AvgRating = ratingSum / float64(len(sessions))
	out.AvgWaveHeight = waveSum / float64(len(sessions))
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
