package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastebud-ai/namegen/backend/internal/service"
)

// defaultTemperature matches the UI slider's initial position.
const defaultTemperature = 0.7

// ConceptGenerator is the service surface the handler depends on.
type ConceptGenerator interface {
	GenerateConcept(ctx context.Context, cuisine string, opts service.GenerateOptions) (*service.RestaurantConcept, error)
}

// GenerateHandler handles restaurant concept generation requests
type GenerateHandler struct {
	concepts ConceptGenerator
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(concepts ConceptGenerator) *GenerateHandler {
	return &GenerateHandler{concepts: concepts}
}

// RegisterRoutes registers the generation routes
func (h *GenerateHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/cuisines", h.ListCuisines)
	router.POST("/generate", h.Generate)
}

// ListCuisines returns the closed set of cuisines offered by the UI.
func (h *GenerateHandler) ListCuisines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cuisines": service.SupportedCuisines()})
}

// Generate handles a single concept generation request
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	concept, err := h.concepts.GenerateConcept(c.Request.Context(), req.Cuisine, service.GenerateOptions{
		Temperature: temperature,
		Credential:  req.APIKey,
	})
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": messageForError(err)})
		return
	}

	style := req.MenuStyle
	if style == "" {
		style = service.StyleBullets
	}
	format := req.ExportFormat
	if format == "" {
		format = service.FormatText
	}

	c.JSON(http.StatusCreated, GenerateResponse{
		ID: uuid.New().String(),
		Concept: &ConceptPayload{
			Cuisine:     concept.Cuisine,
			Name:        concept.Name,
			Slogan:      concept.Slogan,
			Description: concept.Description,
			MenuItems:   concept.MenuItems,
			DrinkItems:  concept.DrinkItems,
			MenuText:    service.FormatList(concept.MenuItems, style),
			DrinksText:  service.FormatList(concept.DrinkItems, style),
		},
		Export: service.ExportConcept(concept, format, style),
	})
}

// statusForError maps the pipeline's error kinds onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmptyResult):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func messageForError(err error) string {
	if errors.Is(err, service.ErrEmptyResult) {
		return "The model returned no usable text. Try again or adjust the temperature."
	}
	return err.Error()
}
