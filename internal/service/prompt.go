package service

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"
)

// supportedCuisines is the closed set of cuisines offered by the UI selector.
var supportedCuisines = []string{
	"Indian", "Italian", "Mexican", "Arabic", "American", "Chinese", "Japanese",
	"Thai", "Korean", "French", "Spanish", "Greek", "Turkish", "Vietnamese",
}

var (
	namePrompt = prompts.NewPromptTemplate(
		"You are a brand consultant. Give a short, catchy, brandable restaurant name "+
			"for {{.cuisine}} cuisine. Return ONLY the name, no quotes or extra text.",
		[]string{"cuisine"},
	)
	menuPrompt = prompts.NewPromptTemplate(
		"List 6 popular menu items for a {{.cuisine}} restaurant named {{.restaurant_name}}. "+
			"Return one item per line, no numbering.",
		[]string{"cuisine", "restaurant_name"},
	)
	drinksPrompt = prompts.NewPromptTemplate(
		"List 6 popular drink items for a {{.cuisine}} restaurant named {{.restaurant_name}}. "+
			"Include at least 2 non-alcoholic options. "+
			"Return one item per line, no numbering.",
		[]string{"cuisine", "restaurant_name"},
	)
	sloganPrompt = prompts.NewPromptTemplate(
		"You are a brand copywriter. Create a short, catchy slogan (max 6 words) "+
			"for a {{.cuisine}} restaurant named {{.restaurant_name}}. Return ONLY the slogan.",
		[]string{"cuisine", "restaurant_name"},
	)
	descriptionPrompt = prompts.NewPromptTemplate(
		"Write a warm, vivid, 2-3 sentence description for a {{.cuisine}} restaurant "+
			"named {{.restaurant_name}}. Avoid cliches. No markdown or extra headings.",
		[]string{"cuisine", "restaurant_name"},
	)
)

// SupportedCuisines returns the cuisines the UI may offer, in display order.
func SupportedCuisines() []string {
	out := make([]string, len(supportedCuisines))
	copy(out, supportedCuisines)
	return out
}

// IsSupportedCuisine reports whether c is one of the offered cuisines.
func IsSupportedCuisine(c string) bool {
	for _, cuisine := range supportedCuisines {
		if cuisine == c {
			return true
		}
	}
	return false
}

// PromptBuilder renders the fixed instruction templates for the model.
// It performs string substitution only; cuisine membership is the
// caller's responsibility. All methods are pure and deterministic.
type PromptBuilder struct{}

// NewPromptBuilder creates a new PromptBuilder instance
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildNamePrompt renders the restaurant-name instruction for a cuisine.
func (b *PromptBuilder) BuildNamePrompt(cuisine string) (string, error) {
	if strings.TrimSpace(cuisine) == "" {
		return "", fmt.Errorf("%w: cuisine must not be empty", ErrInvalidInput)
	}
	return b.format(namePrompt, map[string]any{"cuisine": cuisine})
}

// BuildMenuPrompt renders the menu-items instruction for a named restaurant.
func (b *PromptBuilder) BuildMenuPrompt(cuisine, restaurantName string) (string, error) {
	return b.followUp(menuPrompt, cuisine, restaurantName)
}

// BuildDrinksPrompt renders the drink-items instruction for a named restaurant.
func (b *PromptBuilder) BuildDrinksPrompt(cuisine, restaurantName string) (string, error) {
	return b.followUp(drinksPrompt, cuisine, restaurantName)
}

// BuildSloganPrompt renders the slogan instruction for a named restaurant.
func (b *PromptBuilder) BuildSloganPrompt(cuisine, restaurantName string) (string, error) {
	return b.followUp(sloganPrompt, cuisine, restaurantName)
}

// BuildDescriptionPrompt renders the description instruction for a named restaurant.
func (b *PromptBuilder) BuildDescriptionPrompt(cuisine, restaurantName string) (string, error) {
	return b.followUp(descriptionPrompt, cuisine, restaurantName)
}

func (b *PromptBuilder) followUp(tmpl prompts.PromptTemplate, cuisine, restaurantName string) (string, error) {
	if strings.TrimSpace(cuisine) == "" {
		return "", fmt.Errorf("%w: cuisine must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(restaurantName) == "" {
		return "", fmt.Errorf("%w: restaurant name must not be empty", ErrInvalidInput)
	}
	return b.format(tmpl, map[string]any{
		"cuisine":         cuisine,
		"restaurant_name": restaurantName,
	})
}

func (b *PromptBuilder) format(tmpl prompts.PromptTemplate, values map[string]any) (string, error) {
	rendered, err := tmpl.Format(values)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}
	return rendered, nil
}
