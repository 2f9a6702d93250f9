package forecast

import (
	"context"
	"math/rand"
	"time"

	"backend-surfbuddy/internal/observability"

	"go.uber.org/zap"
)

const placeholderHours = 24

// Service wraps the provider client and substitutes a clearly marked
// placeholder forecast when the provider is unavailable, instead of surfacing
// an error to the caller.
type Service struct {
	client *Client
	log    *zap.Logger
	rand   *rand.Rand
	now    func() time.Time
}

func NewService(client *Client, log *zap.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// Forecast returns the marine forecast for the coordinates. Provider failures
// are logged and counted, and the caller receives placeholder data with
// Source set to SourcePlaceholder.
func (s *Service) Forecast(ctx context.Context, lat, lng float64) Forecast {
	fc, err := s.client.WeatherPoint(ctx, lat, lng)
	if err != nil {
		s.log.Warn("forecast fetch failed, serving placeholder",
			zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		observability.RecordForecastFallback()
		return s.placeholder()
	}
	return fc
}

// Tides returns tide extremes for the coordinates, or an empty list when the
// provider fails.
func (s *Service) Tides(ctx context.Context, lat, lng float64) []TideExtreme {
	tides, err := s.client.TideExtremes(ctx, lat, lng)
	if err != nil {
		s.log.Warn("tide fetch failed",
			zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		return []TideExtreme{}
	}
	return tides
}

func (s *Service) placeholder() Forecast {
	base := s.now()
	hours := make([]Hour, 0, placeholderHours)
	for i := 0; i < placeholderHours; i++ {
		hours = append(hours, Hour{
			Time:             base.Add(time.Duration(i) * time.Hour).UTC().Format(time.RFC3339),
			WaveHeight:       s.rand.Float64()*3 + 0.5,
			WavePeriod:       s.rand.Float64()*5 + 8,
			WaveDirection:    s.rand.Float64() * 360,
			WindSpeed:        s.rand.Float64()*20 + 5,
			WindDirection:    s.rand.Float64() * 360,
			AirTemperature:   s.rand.Float64()*10 + 20,
			WaterTemperature: s.rand.Float64()*5 + 18,
		})
	}
	return Forecast{Source: SourcePlaceholder, Hours: hours}
}
