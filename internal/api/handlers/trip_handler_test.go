package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-travel-planner/internal/models"
	"ai-travel-planner/internal/repository"
	"ai-travel-planner/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTripService struct {
	trip        *models.Trip
	generateErr error
	trips       []*models.Trip
	rows        []*models.Activity
	getErr      error

	gotPrefs *models.TripPreferences
}

func (f *fakeTripService) GenerateTrip(ctx context.Context, principal models.Principal, prefs *models.TripPreferences) (*models.Trip, error) {
	f.gotPrefs = prefs
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.trip, nil
}

func (f *fakeTripService) ListTrips(ctx context.Context, principal models.Principal) ([]*models.Trip, error) {
	return f.trips, nil
}

func (f *fakeTripService) GetTrip(ctx context.Context, principal models.Principal, tripID uuid.UUID) (*models.Trip, []*models.Activity, error) {
	if f.getErr != nil {
		return nil, nil, f.getErr
	}
	return f.trip, f.rows, nil
}

// newTripApp routes through a stub auth middleware that injects the
// principal the way the real one does.
func newTripApp(svc *fakeTripService, principal *models.Principal) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if principal != nil {
			c.Locals("userID", principal.UserID.String())
			c.Locals("email", principal.Email)
		}
		return c.Next()
	})

	h := NewTripHandler(svc, zap.NewNop())
	app.Post("/trips/generate", h.Generate)
	app.Get("/trips", h.List)
	app.Get("/trips/:id", h.Get)
	return app
}

func sampleTrip() *models.Trip {
	return &models.Trip{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Destination: "Bali, Indonesia",
		Duration:    5,
		Budget:      models.BudgetMedium,
		TravelStyle: models.StyleBalanced,
		AISuggestions: &models.AISuggestion{
			Destination: "Bali, Indonesia",
			Activities: []models.TripDay{
				{Day: 1, Items: []models.TripActivity{{Type: models.ActivityTypeActivity, Name: "Beach walk", Time: "09:00"}}},
			},
			Recommendations: &models.Recommendations{Hotels: []string{"Alaya Resort"}},
		},
		CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func generateBody(t *testing.T) io.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"description":  "5 days in Bali with surfing",
		"duration":     5,
		"budget":       "MEDIUM",
		"travel_style": "BALANCED",
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestTripHandler_Generate_Success(t *testing.T) {
	// Arrange
	svc := &fakeTripService{trip: sampleTrip()}
	principal := models.Principal{UserID: uuid.New(), Email: "traveler@example.com"}
	app := newTripApp(svc, &principal)

	req := httptest.NewRequest(http.MethodPost, "/trips/generate", generateBody(t))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp, err := app.Test(req)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Bali, Indonesia", body["destination"])
	assert.NotNil(t, body["activities"])
	assert.NotNil(t, body["recommendations"])

	require.NotNil(t, svc.gotPrefs)
	assert.Equal(t, 5, svc.gotPrefs.Duration)
	assert.Equal(t, models.BudgetMedium, svc.gotPrefs.Budget)
}

func TestTripHandler_Generate_NoPrincipal(t *testing.T) {
	svc := &fakeTripService{trip: sampleTrip()}
	app := newTripApp(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/trips/generate", generateBody(t))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, svc.gotPrefs)
}

func TestTripHandler_Generate_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing description",
			body: map[string]any{"duration": 5, "budget": "MEDIUM", "travel_style": "BALANCED"},
		},
		{
			name: "duration out of range",
			body: map[string]any{"description": "x", "duration": 45, "budget": "MEDIUM", "travel_style": "BALANCED"},
		},
		{
			name: "unknown budget",
			body: map[string]any{"description": "x", "duration": 5, "budget": "CHEAP", "travel_style": "BALANCED"},
		},
		{
			name: "unknown travel style",
			body: map[string]any{"description": "x", "duration": 5, "budget": "MEDIUM", "travel_style": "EXTREME"},
		},
	}

	principal := models.Principal{UserID: uuid.New()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTripService{}
			app := newTripApp(svc, &principal)

			raw, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/trips/generate", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Nil(t, svc.gotPrefs)
		})
	}
}

func TestTripHandler_Generate_UpstreamFailureIsBadGateway(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"suggestion failure", service.ErrSuggestionGeneration, fiber.StatusBadGateway},
		{"forecast failure", service.ErrForecastFetch, fiber.StatusBadGateway},
		{"profile persist failure", service.ErrProfilePersist, fiber.StatusInternalServerError},
		{"trip persist failure", service.ErrTripPersist, fiber.StatusInternalServerError},
		{"activity persist failure", service.ErrActivityPersist, fiber.StatusInternalServerError},
	}

	principal := models.Principal{UserID: uuid.New()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTripService{generateErr: tt.err}
			app := newTripApp(svc, &principal)

			req := httptest.NewRequest(http.MethodPost, "/trips/generate", generateBody(t))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestTripHandler_Get_NotFound(t *testing.T) {
	svc := &fakeTripService{getErr: repository.ErrTripNotFound}
	principal := models.Principal{UserID: uuid.New()}
	app := newTripApp(svc, &principal)

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTripHandler_Get_InvalidID(t *testing.T) {
	svc := &fakeTripService{}
	principal := models.Principal{UserID: uuid.New()}
	app := newTripApp(svc, &principal)

	req := httptest.NewRequest(http.MethodGet, "/trips/not-a-uuid", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTripHandler_List_ReturnsSummaries(t *testing.T) {
	// Arrange
	trip := sampleTrip()
	svc := &fakeTripService{trips: []*models.Trip{trip}}
	principal := models.Principal{UserID: uuid.New()}
	app := newTripApp(svc, &principal)

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)

	// Act
	resp, err := app.Test(req)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summaries []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, trip.ID.String(), summaries[0]["id"])
	assert.Equal(t, "Bali, Indonesia", summaries[0]["destination"])
	assert.NotContains(t, summaries[0], "activities")
}
