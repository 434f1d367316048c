package dto

import "ai-travel-planner/internal/models"

type GenerateTripRequest struct {
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"required,min=1,max=30"`
	Budget      string `json:"budget" validate:"required,oneof=BUDGET MEDIUM LUXURY"`
	TravelStyle string `json:"travel_style" validate:"required,oneof=RELAXED BALANCED ACTIVE"`
}

func (r *GenerateTripRequest) Preferences() *models.TripPreferences {
	return &models.TripPreferences{
		Description: r.Description,
		Duration:    r.Duration,
		Budget:      models.Budget(r.Budget),
		TravelStyle: models.TravelStyle(r.TravelStyle),
	}
}

// TripResponse is the assembled view returned after generation: the
// itinerary by day plus recommendations, weather, and the optional cost
// estimate and packing list.
type TripResponse struct {
	ID              string                  `json:"id"`
	Destination     string                  `json:"destination"`
	Duration        int                     `json:"duration"`
	Budget          string                  `json:"budget"`
	TravelStyle     string                  `json:"travel_style"`
	Activities      []models.TripDay        `json:"activities"`
	Recommendations *models.Recommendations `json:"recommendations"`
	WeatherData     *models.WeatherForecast `json:"weather_data,omitempty"`
	CostEstimate    *models.CostEstimate    `json:"cost_estimate,omitempty"`
	PackingList     []models.PackingItem    `json:"packing_list,omitempty"`
	CreatedAt       string                  `json:"created_at"`
}

type TripSummaryResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
	Budget      string `json:"budget"`
	TravelStyle string `json:"travel_style"`
	CreatedAt   string `json:"created_at"`
}

type TripDetailResponse struct {
	TripResponse
	Rows []ActivityRowResponse `json:"activity_rows"`
}

type ActivityRowResponse struct {
	ID   string `json:"id"`
	Day  int    `json:"day"`
	Type string `json:"type"`
	Name string `json:"name"`
	Time string `json:"time"`
}
