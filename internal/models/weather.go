package models

// WeatherForecast is the typed slice of the weatherapi.com forecast
// response this service consumes and persists. Decoding is the
// parse-or-fail boundary: provider JSON never flows into storage
// unchecked.
type WeatherForecast struct {
	Location WeatherLocation `json:"location"`
	Forecast ForecastDays    `json:"forecast"`
}

type WeatherLocation struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type ForecastDays struct {
	Days []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date string     `json:"date"`
	Day  DaySummary `json:"day"`
}

type DaySummary struct {
	MaxTempC     float64          `json:"maxtemp_c"`
	MinTempC     float64          `json:"mintemp_c"`
	AvgTempC     float64          `json:"avgtemp_c"`
	ChanceOfRain float64          `json:"daily_chance_of_rain"`
	Condition    WeatherCondition `json:"condition"`
}

type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}
