package forecast

// Source values carried on a Forecast, so a placeholder is distinguishable
// from a genuine flat forecast.
const (
	SourceAPI         = "api"
	SourcePlaceholder = "placeholder"
)

// Hour is one hourly record of marine conditions.
type Hour struct {
	Time             string  `json:"time"`
	WaveHeight       float64 `json:"waveHeight"`
	WavePeriod       float64 `json:"wavePeriod"`
	WaveDirection    float64 `json:"waveDirection"`
	WindSpeed        float64 `json:"windSpeed"`
	WindDirection    float64 `json:"windDirection"`
	AirTemperature   float64 `json:"airTemperature"`
	WaterTemperature float64 `json:"waterTemperature"`
}

type Forecast struct {
	Source string `json:"source"`
	Hours  []Hour `json:"hours"`
}

// TideExtreme is one high or low tide event.
type TideExtreme struct {
	Time   string  `json:"time"`
	Height float64 `json:"height"`
	Type   string  `json:"type"`
}
