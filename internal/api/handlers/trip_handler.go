package handlers

import (
	"context"
	"errors"
	"time"

	"ai-travel-planner/internal/dto"
	"ai-travel-planner/internal/models"
	"ai-travel-planner/internal/repository"
	"ai-travel-planner/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TripService is the slice of the trip pipeline the HTTP layer needs.
type TripService interface {
	GenerateTrip(ctx context.Context, principal models.Principal, prefs *models.TripPreferences) (*models.Trip, error)
	ListTrips(ctx context.Context, principal models.Principal) ([]*models.Trip, error)
	GetTrip(ctx context.Context, principal models.Principal, tripID uuid.UUID) (*models.Trip, []*models.Activity, error)
}

type TripHandler struct {
	tripService TripService
	logger      *zap.Logger
}

func NewTripHandler(tripService TripService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripService: tripService,
		logger:      logger,
	}
}

// Generate godoc
// @Summary Generate a trip plan
// @Description Run the generation pipeline: LLM itinerary, weather forecast, persistence
// @Tags trips
// @Accept json
// @Produce json
// @Param request body dto.GenerateTripRequest true "Trip preferences"
// @Security Bearer
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /trips/generate [post]
func (h *TripHandler) Generate(c *fiber.Ctx) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.GenerateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	trip, err := h.tripService.GenerateTrip(c.Context(), principal, req.Preferences())
	if err != nil {
		return h.pipelineFailure(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTripResponse(trip))
}

// List godoc
// @Summary List trips
// @Description List the caller's generated trips, newest first
// @Tags trips
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.TripSummaryResponse
// @Failure 401 {object} map[string]string
// @Router /trips [get]
func (h *TripHandler) List(c *fiber.Ctx) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	trips, err := h.tripService.ListTrips(c.Context(), principal)
	if err != nil {
		h.logger.Error("Failed to list trips", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list trips",
		})
	}

	summaries := make([]dto.TripSummaryResponse, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, dto.TripSummaryResponse{
			ID:          trip.ID.String(),
			Destination: trip.Destination,
			Duration:    trip.Duration,
			Budget:      string(trip.Budget),
			TravelStyle: string(trip.TravelStyle),
			CreatedAt:   trip.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(summaries)
}

// Get godoc
// @Summary Get one trip
// @Description Fetch a trip with its flattened activity rows
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.TripDetailResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trips/{id} [get]
func (h *TripHandler) Get(c *fiber.Ctx) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	tripID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trip ID",
		})
	}

	trip, rows, err := h.tripService.GetTrip(c.Context(), principal, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Trip not found",
			})
		}
		h.logger.Error("Failed to get trip", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get trip",
		})
	}

	resp := dto.TripDetailResponse{TripResponse: toTripResponse(trip)}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, dto.ActivityRowResponse{
			ID:   row.ID.String(),
			Day:  row.Day,
			Type: string(row.Type),
			Name: row.Name,
			Time: row.Time,
		})
	}

	return c.JSON(resp)
}

// pipelineFailure converts a pipeline stage error into one user-visible
// message. Upstream provider failures map to 502, persistence to 500.
func (h *TripHandler) pipelineFailure(c *fiber.Ctx, err error) error {
	h.logger.Error("Trip generation failed", zap.Error(err))

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not authenticated",
		})
	case errors.Is(err, service.ErrSuggestionGeneration):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate trip suggestions",
		})
	case errors.Is(err, service.ErrForecastFetch):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch weather information",
		})
	case errors.Is(err, service.ErrProfilePersist):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user profile",
		})
	case errors.Is(err, service.ErrTripPersist):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save trip details",
		})
	case errors.Is(err, service.ErrActivityPersist):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save trip activities",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate trip plan",
		})
	}
}

func toTripResponse(trip *models.Trip) dto.TripResponse {
	resp := dto.TripResponse{
		ID:           trip.ID.String(),
		Destination:  trip.Destination,
		Duration:     trip.Duration,
		Budget:       string(trip.Budget),
		TravelStyle:  string(trip.TravelStyle),
		WeatherData:  trip.WeatherData,
		CostEstimate: trip.CostEstimate,
		PackingList:  trip.PackingList,
		CreatedAt:    trip.CreatedAt.Format(time.RFC3339),
	}
	if trip.AISuggestions != nil {
		resp.Activities = trip.AISuggestions.Activities
		resp.Recommendations = trip.AISuggestions.Recommendations
	}
	return resp
}

func getPrincipal(c *fiber.Ctx) (models.Principal, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return models.Principal{}, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return models.Principal{}, err
	}

	email, _ := c.Locals("email").(string)

	return models.Principal{UserID: userID, Email: email}, nil
}
