package service

import (
	"context"
	"errors"
	"fmt"
)

// RestaurantConcept is the assembled output for a single generation request.
type RestaurantConcept struct {
	Cuisine     string   `json:"cuisine"`
	Name        string   `json:"name"`
	Slogan      string   `json:"slogan,omitempty"`
	Description string   `json:"description,omitempty"`
	MenuItems   []string `json:"menu_items"`
	DrinkItems  []string `json:"drink_items"`
}

// ConceptService composes the prompt builder and the generation pipeline
// into the full name/menu/drinks/slogan/description flow. Each stage is a
// separate completion; the generated name feeds the follow-up prompts.
type ConceptService struct {
	generator TextGenerator
	prompts   *PromptBuilder
}

// NewConceptService creates a new ConceptService instance
func NewConceptService(generator TextGenerator) *ConceptService {
	return &ConceptService{
		generator: generator,
		prompts:   NewPromptBuilder(),
	}
}

// GenerateConcept produces a restaurant concept for one of the supported
// cuisines. The name and menu stages must yield text; drinks, slogan and
// description are allowed to come back empty.
func (s *ConceptService) GenerateConcept(ctx context.Context, cuisine string, opts GenerateOptions) (*RestaurantConcept, error) {
	if !IsSupportedCuisine(cuisine) {
		return nil, fmt.Errorf("%w: unsupported cuisine %q", ErrInvalidInput, cuisine)
	}

	name, err := s.generateName(ctx, cuisine, opts)
	if err != nil {
		return nil, err
	}

	menuItems, err := s.generateLines(ctx, cuisine, name, opts, s.prompts.BuildMenuPrompt)
	if err != nil {
		return nil, err
	}
	if len(menuItems) == 0 {
		return nil, fmt.Errorf("%w: no menu items were returned", ErrEmptyResult)
	}

	drinkItems, err := s.generateLines(ctx, cuisine, name, opts, s.prompts.BuildDrinksPrompt)
	if err != nil && !errors.Is(err, ErrEmptyResult) {
		return nil, err
	}

	slogan, err := s.generateOptional(ctx, cuisine, name, opts, s.prompts.BuildSloganPrompt)
	if err != nil {
		return nil, err
	}

	description, err := s.generateOptional(ctx, cuisine, name, opts, s.prompts.BuildDescriptionPrompt)
	if err != nil {
		return nil, err
	}

	return &RestaurantConcept{
		Cuisine:     cuisine,
		Name:        name,
		Slogan:      CleanName(slogan),
		Description: description,
		MenuItems:   menuItems,
		DrinkItems:  drinkItems,
	}, nil
}

func (s *ConceptService) generateName(ctx context.Context, cuisine string, opts GenerateOptions) (string, error) {
	prompt, err := s.prompts.BuildNamePrompt(cuisine)
	if err != nil {
		return "", err
	}

	raw, err := s.generator.Complete(ctx, prompt, opts)
	if err != nil {
		return "", err
	}

	name := CleanName(raw)
	if name == "" {
		return "", fmt.Errorf("%w: no restaurant name was returned", ErrEmptyResult)
	}
	return name, nil
}

func (s *ConceptService) generateLines(ctx context.Context, cuisine, name string, opts GenerateOptions, build func(string, string) (string, error)) ([]string, error) {
	prompt, err := build(cuisine, name)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	return NormalizeLines(raw), nil
}

// generateOptional runs a follow-up stage whose empty result is tolerated.
func (s *ConceptService) generateOptional(ctx context.Context, cuisine, name string, opts GenerateOptions, build func(string, string) (string, error)) (string, error) {
	prompt, err := build(cuisine, name)
	if err != nil {
		return "", err
	}

	raw, err := s.generator.Complete(ctx, prompt, opts)
	if err != nil {
		if errors.Is(err, ErrEmptyResult) {
			return "", nil
		}
		return "", err
	}

	return raw, nil
}
