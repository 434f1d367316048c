package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-travel-planner/internal/models"
	"ai-travel-planner/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// SuggestionService turns trip preferences into a structured itinerary
// through a single LLM call. The JSON contract lives in the system
// instruction; the per-request prompt carries the preferences and the
// content requirements.
type SuggestionService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are an expert travel planner. Create a detailed travel itinerary based on user preferences. Your response must be a valid JSON object with this exact structure:
{
  "destination": "city, country",
  "activities": [
    {
      "day": number,
      "items": [
        {
          "type": "activity" | "accommodation" | "transportation",
          "name": "string",
          "time": "HH:MM"
        }
      ]
    }
  ],
  "recommendations": {
    "hotels": ["string"],
    "restaurants": ["string"],
    "activities": ["string"]
  },
  "cost_estimate": {
    "accommodation": number,
    "transportation": number,
    "activities": number,
    "food": number,
    "miscellaneous": number,
    "total": number,
    "currency": "USD"
  },
  "packing_list": [
    {
      "name": "string",
      "category": "clothing" | "toiletries" | "electronics" | "documents" | "miscellaneous",
      "essential": boolean
    }
  ]
}

Important: Return ONLY the JSON object, with no additional text or explanation.`
}

func NewSuggestionService(cfg *config.GigaChatConfig, logger *zap.Logger) (*SuggestionService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.7

	return &SuggestionService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Generate makes exactly one LLM call and parses the reply against the
// itinerary contract. There is no retry: a failed call or an
// unparseable reply surfaces immediately.
func (s *SuggestionService) Generate(ctx context.Context, prefs *models.TripPreferences) (*models.AISuggestion, error) {
	prompt := buildPrompt(prefs)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestionGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response from LLM", ErrSuggestionGeneration)
	}

	suggestion, err := parseSuggestion(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSuggestionGeneration, err)
	}

	s.logger.Info("Trip suggestions generated",
		zap.String("destination", suggestion.Destination),
		zap.Int("days", len(suggestion.Activities)),
	)

	return suggestion, nil
}

func buildPrompt(p *models.TripPreferences) string {
	return fmt.Sprintf(`Create a travel itinerary with these exact preferences:
- Description: %s
- Duration: %d days
- Budget: %s
- Travel Style: %s

Requirements:
1. Include local attractions and activities
2. Add cultural experiences
3. Include all transportation details
4. Suggest specific restaurants
5. Recommend actual hotels
6. Ensure realistic timing with proper breaks
7. Format times as HH:MM (24-hour format)
8. Provide detailed cost estimates based on the budget level
9. Generate a comprehensive packing list based on the destination, duration, and activities`,
		p.Description, p.Duration, p.Budget, p.TravelStyle)
}

// parseSuggestion is the parse-or-fail boundary for LLM output: extract
// the JSON object (models occasionally wrap it in markdown fences),
// unmarshal into the typed contract, and reject replies missing the
// mandatory top-level fields. Nested field contents are not validated
// further.
func parseSuggestion(content string) (*models.AISuggestion, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrSuggestionParse)
	}

	var suggestion models.AISuggestion
	if err := json.Unmarshal([]byte(content[jsonStart:jsonEnd+1]), &suggestion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestionParse, err)
	}

	if suggestion.Destination == "" {
		return nil, fmt.Errorf("%w: destination", ErrSuggestionSchema)
	}
	if suggestion.Activities == nil {
		return nil, fmt.Errorf("%w: activities", ErrSuggestionSchema)
	}
	if suggestion.Recommendations == nil {
		return nil, fmt.Errorf("%w: recommendations", ErrSuggestionSchema)
	}

	return &suggestion, nil
}

func (s *SuggestionService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
