package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"lister-backend/internal/model"
)

// stubGenerator returns a canned response, or an error, and records the
// last prompt it was asked to complete.
type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	lastOpts   GenerateOptions
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, opts GenerateOptions) (string, error) {
	s.lastPrompt = prompt
	s.lastOpts = opts
	return s.response, s.err
}

func TestSuggestValueTrimsResponse(t *testing.T) {
	gen := &stubGenerator{response: "  Metallic Blue \n"}
	engine := NewEngine(gen)

	pctx := model.ProductContext{Title: "Metallic Blue Widget"}
	value, confidence := engine.SuggestValue(context.Background(), "Color", pctx)

	assert.Equal(t, "Metallic Blue", value)
	assert.Greater(t, confidence, 0.0)
	assert.True(t, gen.lastOpts.StopAtNewline)
	assert.Contains(t, gen.lastPrompt, "Color")
}

func TestSuggestValueDegradesOnBackendError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	engine := NewEngine(gen)

	value, confidence := engine.SuggestValue(context.Background(), "Color", model.ProductContext{})

	assert.Equal(t, "", value)
	assert.Equal(t, 0.0, confidence)
}

func TestSuggestManyScoresEachValue(t *testing.T) {
	gen := &stubGenerator{response: `{"Color": "Red", "Size": "Large"}`}
	engine := NewEngine(gen)

	aspects := []model.Aspect{
		{Name: "Color"},
		{Name: "Size"},
		{Name: "Material"},
	}
	pctx := model.ProductContext{Title: "Red Widget", Description: "Large red widget"}
	results := engine.SuggestMany(context.Background(), aspects, pctx)

	assert.Len(t, results, 2)
	assert.Equal(t, "Red", results["Color"].Value)
	assert.Equal(t, model.SourceTitle, results["Color"].Source)
	assert.Greater(t, results["Color"].Confidence, 0.0)
	assert.Equal(t, model.SourceDescription, results["Size"].Source)

	// Material was absent from the response, so it gets no entry.
	assert.NotContains(t, results, "Material")
	assert.True(t, gen.lastOpts.JSONResponse)
}

func TestSuggestManyEmptyAspectList(t *testing.T) {
	gen := &stubGenerator{response: `{}`}
	engine := NewEngine(gen)

	results := engine.SuggestMany(context.Background(), nil, model.ProductContext{})
	assert.Empty(t, results)
	// No backend call for an empty list.
	assert.Empty(t, gen.lastPrompt)
}

func TestSuggestManyDegradesOnBackendError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("backend down")}
	engine := NewEngine(gen)

	results := engine.SuggestMany(context.Background(), []model.Aspect{{Name: "Color"}}, model.ProductContext{})
	assert.Empty(t, results)
}
