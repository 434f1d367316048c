package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSuggestionJSON = `{
  "destination": "Bali, Indonesia",
  "activities": [
    {
      "day": 1,
      "items": [
        {"type": "transportation", "name": "Airport transfer to Ubud", "time": "10:00"},
        {"type": "accommodation", "name": "Check in at Alaya Resort", "time": "14:00"},
        {"type": "activity", "name": "Walk the Campuhan Ridge", "time": "16:30"}
      ]
    },
    {
      "day": 2,
      "items": [
        {"type": "activity", "name": "Tegalalang rice terraces", "time": "08:00"}
      ]
    }
  ],
  "recommendations": {
    "hotels": ["Alaya Resort Ubud"],
    "restaurants": ["Locavore", "Warung Biah Biah"],
    "activities": ["Sunrise trek on Mount Batur"]
  },
  "cost_estimate": {
    "accommodation": 400,
    "transportation": 120,
    "activities": 200,
    "food": 180,
    "miscellaneous": 50,
    "total": 900,
    "currency": "USD"
  },
  "packing_list": [
    {"name": "Rain jacket", "category": "clothing", "essential": true},
    {"name": "Power adapter", "category": "electronics", "essential": false}
  ]
}`

func TestParseSuggestion_ValidPayload(t *testing.T) {
	// Act
	suggestion, err := parseSuggestion(validSuggestionJSON)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Bali, Indonesia", suggestion.Destination)
	require.Len(t, suggestion.Activities, 2)
	assert.Equal(t, 1, suggestion.Activities[0].Day)
	require.Len(t, suggestion.Activities[0].Items, 3)
	assert.Equal(t, "Airport transfer to Ubud", suggestion.Activities[0].Items[0].Name)
	require.NotNil(t, suggestion.Recommendations)
	assert.Equal(t, []string{"Alaya Resort Ubud"}, suggestion.Recommendations.Hotels)
	require.NotNil(t, suggestion.CostEstimate)
	assert.Equal(t, "USD", suggestion.CostEstimate.Currency)
	require.Len(t, suggestion.PackingList, 2)
	assert.True(t, suggestion.PackingList[0].Essential)
}

func TestParseSuggestion_MarkdownFencedPayload(t *testing.T) {
	// Arrange
	content := "```json\n" + validSuggestionJSON + "\n```"

	// Act
	suggestion, err := parseSuggestion(content)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Bali, Indonesia", suggestion.Destination)
}

func TestParseSuggestion_SurroundingProse(t *testing.T) {
	// Arrange
	content := "Here is your itinerary:\n" + validSuggestionJSON + "\nEnjoy your trip!"

	// Act
	suggestion, err := parseSuggestion(content)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Bali, Indonesia", suggestion.Destination)
}

func TestParseSuggestion_NotJSON(t *testing.T) {
	// Act
	_, err := parseSuggestion("I cannot plan this trip, sorry.")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSuggestionParse)
}

func TestParseSuggestion_MalformedJSON(t *testing.T) {
	// Act
	_, err := parseSuggestion(`{"destination": "Bali", "activities": [`)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSuggestionParse)
}

func TestParseSuggestion_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing destination",
			content: `{"activities": [], "recommendations": {"hotels": [], "restaurants": [], "activities": []}}`,
		},
		{
			name:    "missing activities",
			content: `{"destination": "Bali", "recommendations": {"hotels": [], "restaurants": [], "activities": []}}`,
		},
		{
			name:    "missing recommendations",
			content: `{"destination": "Bali", "activities": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSuggestion(tt.content)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSuggestionSchema)
		})
	}
}

func TestParseSuggestion_OptionalFieldsAbsent(t *testing.T) {
	// Cost estimate and packing list are optional in the contract.
	content := `{
		"destination": "Lisbon, Portugal",
		"activities": [{"day": 1, "items": []}],
		"recommendations": {"hotels": [], "restaurants": [], "activities": []}
	}`

	suggestion, err := parseSuggestion(content)

	require.NoError(t, err)
	assert.Nil(t, suggestion.CostEstimate)
	assert.Nil(t, suggestion.PackingList)
}

func TestParseSuggestion_CostTotalNotRecomputed(t *testing.T) {
	// The reported total is stored as-is even when the categories do not
	// add up to it.
	content := `{
		"destination": "Lisbon, Portugal",
		"activities": [{"day": 1, "items": []}],
		"recommendations": {"hotels": [], "restaurants": [], "activities": []},
		"cost_estimate": {
			"accommodation": 100,
			"transportation": 100,
			"activities": 100,
			"food": 100,
			"miscellaneous": 100,
			"total": 9999,
			"currency": "EUR"
		}
	}`

	suggestion, err := parseSuggestion(content)

	require.NoError(t, err)
	require.NotNil(t, suggestion.CostEstimate)
	assert.Equal(t, float64(9999), suggestion.CostEstimate.Total)
}

func TestBuildPrompt_IncludesAllPreferences(t *testing.T) {
	// Arrange
	prefs := testPreferences()

	// Act
	prompt := buildPrompt(prefs)

	// Assert
	assert.Contains(t, prompt, prefs.Description)
	assert.Contains(t, prompt, "5 days")
	assert.Contains(t, prompt, "MEDIUM")
	assert.Contains(t, prompt, "BALANCED")
	assert.Contains(t, prompt, "HH:MM")
	assert.Contains(t, prompt, "packing list")
}

func TestBuildSystemInstruction_DescribesContract(t *testing.T) {
	instruction := buildSystemInstruction()

	for _, field := range []string{"destination", "activities", "recommendations", "cost_estimate", "packing_list"} {
		assert.True(t, strings.Contains(instruction, field), "system instruction should mention %q", field)
	}
	assert.Contains(t, instruction, "Return ONLY the JSON object")
}
