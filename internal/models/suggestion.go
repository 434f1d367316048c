package models

type ActivityType string

const (
	ActivityTypeActivity       ActivityType = "activity"
	ActivityTypeAccommodation  ActivityType = "accommodation"
	ActivityTypeTransportation ActivityType = "transportation"
)

type PackingCategory string

const (
	PackingClothing      PackingCategory = "clothing"
	PackingToiletries    PackingCategory = "toiletries"
	PackingElectronics   PackingCategory = "electronics"
	PackingDocuments     PackingCategory = "documents"
	PackingMiscellaneous PackingCategory = "miscellaneous"
)

// AISuggestion is the structured itinerary the LLM must return for one
// generation request. Destination, activities and recommendations are
// mandatory; cost estimate and packing list are carried through when the
// model provides them. Recommendations is a pointer so a missing field
// is distinguishable from an empty one.
type AISuggestion struct {
	Destination     string           `json:"destination"`
	Activities      []TripDay        `json:"activities"`
	Recommendations *Recommendations `json:"recommendations"`
	CostEstimate    *CostEstimate    `json:"cost_estimate,omitempty"`
	PackingList     []PackingItem    `json:"packing_list,omitempty"`
}

// TripDay is one itinerary day with its ordered items.
type TripDay struct {
	Day   int            `json:"day"`
	Items []TripActivity `json:"items"`
}

// TripActivity is a single itinerary entry. Time is a 24-hour "HH:MM"
// string as produced by the prompt contract.
type TripActivity struct {
	Type ActivityType `json:"type"`
	Name string       `json:"name"`
	Time string       `json:"time"`
}

type Recommendations struct {
	Hotels      []string `json:"hotels"`
	Restaurants []string `json:"restaurants"`
	Activities  []string `json:"activities"`
}

// CostEstimate is the per-category breakdown from the LLM. Total is
// carried verbatim; it is not recomputed from the category amounts.
type CostEstimate struct {
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
	Food           float64 `json:"food"`
	Miscellaneous  float64 `json:"miscellaneous"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
}

type PackingItem struct {
	Name      string          `json:"name"`
	Category  PackingCategory `json:"category"`
	Essential bool            `json:"essential"`
}
