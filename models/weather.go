package models

// WeatherForecast is the current conditions snapshot for a district.
type WeatherForecast struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    float64 `json:"humidity"`    // %
	Rainfall    float64 `json:"rainfall"`    // mm
	Description string  `json:"description"`
}

// WeatherResponse pairs the forecast with an irrigation recommendation.
type WeatherResponse struct {
	Forecast       WeatherForecast `json:"forecast"`
	LastUpdated    string          `json:"last_updated"`
	Recommendation string          `json:"recommendation"`
	Meta           Meta            `json:"meta"` // "source" names the upstream provider
}

// DailyForecast is one day of the extended forecast.
type DailyForecast struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	Description string  `json:"description"`
}

// ExtendedForecast is the multi-day forecast for a location.
type ExtendedForecast struct {
	Location  string          `json:"location"`
	Forecasts []DailyForecast `json:"forecasts"`
	Meta      Meta            `json:"meta"`
}
