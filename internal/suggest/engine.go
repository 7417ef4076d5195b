package suggest

import (
	"context"
	"log"
	"strings"

	"lister-backend/internal/model"
)

// singleValueTemperature keeps the backend focused when extracting one
// bare value.
const singleValueTemperature = 0.3

// Engine is the value suggestion engine: it prompts the generative backend
// for candidate aspect values and scores them. A backend failure never
// fails the caller; it degrades to an empty candidate with confidence 0.
type Engine struct {
	gen Generator
}

// NewEngine creates an Engine on top of a generative backend.
func NewEngine(gen Generator) *Engine {
	return &Engine{gen: gen}
}

// SuggestValue produces one candidate value for a single aspect together
// with its confidence score.
func (e *Engine) SuggestValue(ctx context.Context, aspectName string, pctx model.ProductContext) (string, float64) {
	prompt := buildAspectPrompt(aspectName, pctx)

	text, err := e.gen.Generate(ctx, prompt, GenerateOptions{
		Temperature:   singleValueTemperature,
		StopAtNewline: true,
	})
	if err != nil {
		log.Printf("suggest: single-aspect generation failed for %q: %v", aspectName, err)
		return "", 0.0
	}

	value := strings.TrimSpace(text)
	return value, Score(value, aspectName, pctx)
}

// SuggestMany produces candidate values for a whole aspect list in one
// backend call. Aspects absent from the parsed response get no suggestion.
func (e *Engine) SuggestMany(ctx context.Context, aspects []model.Aspect, pctx model.ProductContext) map[string]model.Suggestion {
	results := make(map[string]model.Suggestion)
	if len(aspects) == 0 {
		return results
	}

	prompt := buildBatchPrompt(aspects, pctx)
	text, err := e.gen.Generate(ctx, prompt, GenerateOptions{
		Temperature:  singleValueTemperature,
		JSONResponse: true,
	})
	if err != nil {
		log.Printf("suggest: batch generation failed: %v", err)
		return results
	}

	parsed := parseBatchResponse(text)
	for _, aspect := range aspects {
		value, ok := parsed[aspect.Name]
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		results[aspect.Name] = model.Suggestion{
			AspectName: aspect.Name,
			Value:      value,
			Confidence: Score(value, aspect.Name, pctx),
			Source:     AttributeSource(value, pctx),
		}
	}
	return results
}
