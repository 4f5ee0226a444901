package api

// GenerateRequest is the body of POST /api/v1/generate.
type GenerateRequest struct {
	Cuisine     string   `json:"cuisine" binding:"required"`
	Temperature *float64 `json:"temperature"`

	// APIKey optionally overrides the server's configured credential for
	// this request only.
	APIKey string `json:"api_key"`

	MenuStyle    string `json:"menu_style"`
	ExportFormat string `json:"export_format"`
}

// GenerateResponse is the body returned for a successful generation.
type GenerateResponse struct {
	ID      string          `json:"id"`
	Concept *ConceptPayload `json:"concept"`
	Export  string          `json:"export"`
}

// ConceptPayload mirrors service.RestaurantConcept with the item lists
// pre-rendered in the requested display style.
type ConceptPayload struct {
	Cuisine     string   `json:"cuisine"`
	Name        string   `json:"name"`
	Slogan      string   `json:"slogan,omitempty"`
	Description string   `json:"description,omitempty"`
	MenuItems   []string `json:"menu_items"`
	DrinkItems  []string `json:"drink_items"`
	MenuText    string   `json:"menu_text"`
	DrinksText  string   `json:"drinks_text"`
}
