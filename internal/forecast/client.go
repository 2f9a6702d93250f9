package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const forecastDays = 7

// Client talks to a stormglass-style marine weather API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	now     func() time.Time
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient, now: time.Now}
}

// Provider payload: each parameter is keyed by source, we read the "sg" blend.
type sgValue struct {
	SG float64 `json:"sg"`
}

type sgHour struct {
	Time             string  `json:"time"`
	WaveHeight       sgValue `json:"waveHeight"`
	WavePeriod       sgValue `json:"wavePeriod"`
	WaveDirection    sgValue `json:"waveDirection"`
	WindSpeed        sgValue `json:"windSpeed"`
	WindDirection    sgValue `json:"windDirection"`
	AirTemperature   sgValue `json:"airTemperature"`
	WaterTemperature sgValue `json:"waterTemperature"`
}

type sgWeatherResponse struct {
	Hours []sgHour `json:"hours"`
}

type sgTideResponse struct {
	Data []TideExtreme `json:"data"`
}

// WeatherPoint fetches the hourly marine forecast for the coming week.
func (c *Client) WeatherPoint(ctx context.Context, lat, lng float64) (Forecast, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("params", "waveHeight,wavePeriod,waveDirection,windSpeed,windDirection,airTemperature,waterTemperature")
	start := c.now().Unix()
	params.Set("start", strconv.FormatInt(start, 10))
	params.Set("end", strconv.FormatInt(start+forecastDays*24*60*60, 10))

	var payload sgWeatherResponse
	if err := c.get(ctx, "/weather/point", params, &payload); err != nil {
		return Forecast{}, err
	}

	hours := make([]Hour, 0, len(payload.Hours))
	for _, h := range payload.Hours {
		hours = append(hours, Hour{
			Time:             h.Time,
			WaveHeight:       h.WaveHeight.SG,
			WavePeriod:       h.WavePeriod.SG,
			WaveDirection:    h.WaveDirection.SG,
			WindSpeed:        h.WindSpeed.SG,
			WindDirection:    h.WindDirection.SG,
			AirTemperature:   h.AirTemperature.SG,
			WaterTemperature: h.WaterTemperature.SG,
		})
	}
	return Forecast{Source: SourceAPI, Hours: hours}, nil
}

// TideExtremes fetches high/low tide events for the coming week.
func (c *Client) TideExtremes(ctx context.Context, lat, lng float64) ([]TideExtreme, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	start := c.now().Unix()
	params.Set("start", strconv.FormatInt(start, 10))
	params.Set("end", strconv.FormatInt(start+forecastDays*24*60*60, 10))

	var payload sgTideResponse
	if err := c.get(ctx, "/tide/extremes/point", params, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		payload.Data = []TideExtreme{}
	}
	return payload.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
