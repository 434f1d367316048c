package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-travel-planner/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const forecastBody = `{
  "location": {"name": "Denpasar", "country": "Indonesia"},
  "forecast": {
    "forecastday": [
      {
        "date": "2025-07-01",
        "day": {
          "maxtemp_c": 31.2,
          "mintemp_c": 24.8,
          "avgtemp_c": 27.9,
          "daily_chance_of_rain": 40,
          "condition": {"text": "Patchy rain nearby", "icon": "//cdn.weatherapi.com/day/302.png"}
        }
      },
      {
        "date": "2025-07-02",
        "day": {
          "maxtemp_c": 30.1,
          "mintemp_c": 24.1,
          "avgtemp_c": 27.0,
          "daily_chance_of_rain": 10,
          "condition": {"text": "Sunny", "icon": "//cdn.weatherapi.com/day/113.png"}
        }
      }
    ]
  }
}`

func newWeatherService(t *testing.T, handler http.HandlerFunc) (*WeatherService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.WeatherConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}
	return NewWeatherService(cfg, zap.NewNop()), server
}

func TestWeatherService_Forecast_Success(t *testing.T) {
	// Arrange
	var gotQuery map[string]string
	svc, _ := newWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"key":  q.Get("key"),
			"q":    q.Get("q"),
			"days": q.Get("days"),
			"aqi":  q.Get("aqi"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	})

	// Act
	forecast, err := svc.Forecast(context.Background(), "Bali, Indonesia", 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"key":  "test-key",
		"q":    "Bali, Indonesia",
		"days": "2",
		"aqi":  "no",
	}, gotQuery)

	assert.Equal(t, "Denpasar", forecast.Location.Name)
	require.Len(t, forecast.Forecast.Days, 2)
	assert.Equal(t, "2025-07-01", forecast.Forecast.Days[0].Date)
	assert.InDelta(t, 31.2, forecast.Forecast.Days[0].Day.MaxTempC, 0.001)
	assert.InDelta(t, 40, forecast.Forecast.Days[0].Day.ChanceOfRain, 0.001)
	assert.Equal(t, "Sunny", forecast.Forecast.Days[1].Day.Condition.Text)
}

func TestWeatherService_Forecast_NonOKStatus(t *testing.T) {
	// Arrange
	svc, _ := newWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	})

	// Act
	_, err := svc.Forecast(context.Background(), "Nowhereville", 3)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForecastFetch)
	assert.Contains(t, err.Error(), "status 400")
}

func TestWeatherService_Forecast_MalformedBody(t *testing.T) {
	// Arrange
	svc, _ := newWeatherService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	// Act
	_, err := svc.Forecast(context.Background(), "Bali", 1)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForecastFetch)
}

func TestWeatherService_Forecast_ServerUnreachable(t *testing.T) {
	// Arrange
	svc, server := newWeatherService(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	// Act
	_, err := svc.Forecast(context.Background(), "Bali", 1)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForecastFetch)
}
