package client

import (
	"context"
	"net/url"
	"strconv"

	"farmguru/models"
)

// GetWeather fetches current conditions and the irrigation recommendation
// for a district.
func (c *Client) GetWeather(ctx context.Context, state, district string) (*models.WeatherResponse, error) {
	q := url.Values{}
	q.Set("state", state)
	q.Set("district", district)

	var out models.WeatherResponse
	if err := c.getJSON(ctx, "/api/weather", q, msgWeatherFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtendedForecast fetches the multi-day forecast. days <= 0 leaves the
// backend default (7) in place.
func (c *Client) ExtendedForecast(ctx context.Context, state, district string, days int) (*models.ExtendedForecast, error) {
	q := url.Values{}
	q.Set("state", state)
	q.Set("district", district)
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}

	var out models.ExtendedForecast
	if err := c.getJSON(ctx, "/api/weather/forecast", q, msgForecastFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
