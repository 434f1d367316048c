package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"ai-travel-planner/internal/models"
	"ai-travel-planner/pkg/config"

	"go.uber.org/zap"
)

// WeatherService fetches a multi-day forecast from weatherapi.com. One
// GET per trip generation, no retry, no caching.
type WeatherService struct {
	cfg        *config.WeatherConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewWeatherService(cfg *config.WeatherConfig, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Forecast requests `days` days of weather for the location string as
// returned by the suggestion generator, used verbatim as the query.
func (s *WeatherService) Forecast(ctx context.Context, location string, days int) (*models.WeatherForecast, error) {
	params := url.Values{}
	params.Set("key", s.cfg.APIKey)
	params.Set("q", location)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/forecast.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForecastFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForecastFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrForecastFetch, resp.StatusCode, string(body))
	}

	var forecast models.WeatherForecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForecastFetch, err)
	}

	s.logger.Info("Weather forecast fetched",
		zap.String("location", location),
		zap.Int("days", len(forecast.Forecast.Days)),
	)

	return &forecast, nil
}
