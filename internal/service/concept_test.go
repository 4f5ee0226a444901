package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGenerator answers each stage by recognizing its prompt text.
type scriptedGenerator struct {
	mu    sync.Mutex
	calls []string

	nameReply   string
	menuReply   string
	drinksErr   error
	completeErr error
}

func newScriptedGenerator() *scriptedGenerator {
	return &scriptedGenerator{
		nameReply: `"The Golden Fork"`,
		menuReply: "- Margherita Pizza\n- Tagliatelle al Ragu",
	}
}

func (g *scriptedGenerator) Complete(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	g.mu.Lock()
	g.calls = append(g.calls, prompt)
	g.mu.Unlock()

	if g.completeErr != nil {
		return "", g.completeErr
	}

	switch {
	case strings.Contains(prompt, "menu items"):
		return g.menuReply, nil
	case strings.Contains(prompt, "drink items"):
		if g.drinksErr != nil {
			return "", g.drinksErr
		}
		return "1. Chianti\n2. Espresso", nil
	case strings.Contains(prompt, "slogan"):
		return `"Taste the Tradition"`, nil
	case strings.Contains(prompt, "description"):
		return "A cozy corner of Tuscany.", nil
	default:
		return g.nameReply, nil
	}
}

func (g *scriptedGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func TestConceptService_GenerateConcept(t *testing.T) {
	t.Run("should assemble a full concept", func(t *testing.T) {
		generator := newScriptedGenerator()
		service := NewConceptService(generator)

		concept, err := service.GenerateConcept(context.Background(), "Italian", GenerateOptions{Temperature: 0.7})

		require.NoError(t, err)
		assert.Equal(t, "Italian", concept.Cuisine)
		assert.Equal(t, "The Golden Fork", concept.Name)
		assert.Equal(t, "Taste the Tradition", concept.Slogan)
		assert.Equal(t, "A cozy corner of Tuscany.", concept.Description)
		assert.Equal(t, []string{"Margherita Pizza", "Tagliatelle al Ragu"}, concept.MenuItems)
		assert.Equal(t, []string{"Chianti", "Espresso"}, concept.DrinkItems)

		// name, menu, drinks, slogan, description
		assert.Equal(t, 5, generator.callCount())
	})

	t.Run("should feed the generated name into follow-up prompts", func(t *testing.T) {
		generator := newScriptedGenerator()
		service := NewConceptService(generator)

		_, err := service.GenerateConcept(context.Background(), "Italian", GenerateOptions{Temperature: 0.7})
		require.NoError(t, err)

		for _, prompt := range generator.calls[1:] {
			assert.Contains(t, prompt, "The Golden Fork")
		}
	})

	t.Run("should reject unsupported cuisine without calling the model", func(t *testing.T) {
		generator := newScriptedGenerator()
		service := NewConceptService(generator)

		_, err := service.GenerateConcept(context.Background(), "Martian", GenerateOptions{Temperature: 0.7})

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, generator.callCount())
	})

	t.Run("should fail when no name is returned", func(t *testing.T) {
		generator := newScriptedGenerator()
		generator.nameReply = `""`
		service := NewConceptService(generator)

		_, err := service.GenerateConcept(context.Background(), "Italian", GenerateOptions{Temperature: 0.7})

		assert.ErrorIs(t, err, ErrEmptyResult)
		assert.Equal(t, 1, generator.callCount())
	})

	t.Run("should fail when no menu items are returned", func(t *testing.T) {
		generator := newScriptedGenerator()
		generator.menuReply = "\n\n"
		service := NewConceptService(generator)

		_, err := service.GenerateConcept(context.Background(), "Italian", GenerateOptions{Temperature: 0.7})

		assert.ErrorIs(t, err, ErrEmptyResult)
	})

	t.Run("should tolerate an empty drinks stage", func(t *testing.T) {
		generator := newScriptedGenerator()
		generator.drinksErr = fmt.Errorf("%w: completion content was blank", ErrEmptyResult)
		service := NewConceptService(generator)

		concept, err := service.GenerateConcept(context.Background(), "Italian", GenerateOptions{Temperature: 0.7})

		require.NoError(t, err)
		assert.Empty(t, concept.DrinkItems)
		assert.NotEmpty(t, concept.MenuItems)
	})

	t.Run("should propagate pipeline errors by kind", func(t *testing.T) {
		generator := newScriptedGenerator()
		generator.completeErr = fmt.Errorf("%w: 401", ErrAuthentication)
		service := NewConceptService(generator)

		_, err := service.GenerateConcept(context.Background(), "Italian", GenerateOptions{Temperature: 0.7})

		assert.ErrorIs(t, err, ErrAuthentication)
		assert.Equal(t, 1, generator.callCount())
	})
}
