package models

import (
	"time"

	"github.com/google/uuid"
)

type Budget string

const (
	BudgetLow    Budget = "BUDGET"
	BudgetMedium Budget = "MEDIUM"
	BudgetLuxury Budget = "LUXURY"
)

type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "RELAXED"
	StyleBalanced TravelStyle = "BALANCED"
	StyleActive   TravelStyle = "ACTIVE"
)

// TripPreferences is the validated user input for one generation
// request. Duration is days, bounded to [1,30] at the API boundary.
type TripPreferences struct {
	Description string      `json:"description"`
	Duration    int         `json:"duration"`
	Budget      Budget      `json:"budget"`
	TravelStyle TravelStyle `json:"travel_style"`
}

// Trip mirrors the trips table. The weather and suggestion payloads are
// stored as jsonb, marshaled from their typed structs. A trip is never
// mutated after creation.
type Trip struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	UserID        uuid.UUID        `db:"user_id" json:"user_id"`
	Destination   string           `db:"destination" json:"destination"`
	Duration      int              `db:"duration" json:"duration"`
	Budget        Budget           `db:"budget" json:"budget"`
	TravelStyle   TravelStyle      `db:"travel_style" json:"travel_style"`
	Description   string           `db:"description" json:"description"`
	WeatherData   *WeatherForecast `db:"weather_data" json:"weather_data,omitempty"`
	AISuggestions *AISuggestion    `db:"ai_suggestions" json:"ai_suggestions,omitempty"`
	CostEstimate  *CostEstimate    `db:"cost_estimate" json:"cost_estimate,omitempty"`
	PackingList   []PackingItem    `db:"packing_list" json:"packing_list,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}

// Activity is one flattened itinerary row: TripDay items are denormalized
// into the activities table keyed by trip id and day number.
type Activity struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	TripID    uuid.UUID    `db:"trip_id" json:"trip_id"`
	Day       int          `db:"day" json:"day"`
	Type      ActivityType `db:"type" json:"type"`
	Name      string       `db:"name" json:"name"`
	Time      string       `db:"time" json:"time"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}
