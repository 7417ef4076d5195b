package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lister-backend/internal/model"
)

func TestExtractKeywords(t *testing.T) {
	pctx := model.ProductContext{
		Title:       "The Red Widget, Deluxe!",
		Description: "A widget for the home and office.",
	}
	keywords := extractKeywords(pctx)

	assert.Contains(t, keywords, "red")
	assert.Contains(t, keywords, "widget")
	assert.Contains(t, keywords, "deluxe")
	assert.Contains(t, keywords, "home")
	assert.Contains(t, keywords, "office")

	// Stop words and punctuation are gone, duplicates collapsed.
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "a")
	assert.NotContains(t, keywords, "and")
	assert.NotContains(t, keywords, "for")
	count := 0
	for _, k := range keywords {
		if k == "widget" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildAspectPromptEmbedsContext(t *testing.T) {
	pctx := model.ProductContext{
		Title:       "Red Widget",
		Description: "A red widget.",
		Brand:       "Acme",
		UPC:         "012345678905",
		Category:    "Widgets",
		Images:      []string{"https://img.example/1.jpg"},
		PreviousValues: map[string]string{
			"Color": "Red",
		},
	}
	prompt := buildAspectPrompt("Color", pctx)

	assert.Contains(t, prompt, "aspect: Color")
	assert.Contains(t, prompt, "Title: Red Widget")
	assert.Contains(t, prompt, "Brand: Acme")
	assert.Contains(t, prompt, "UPC: 012345678905")
	assert.Contains(t, prompt, "https://img.example/1.jpg")
	assert.Contains(t, prompt, "- Color: Red")
	assert.Contains(t, prompt, "Provide ONLY the value for Color")
}

func TestBuildBatchPromptListsConstraints(t *testing.T) {
	aspects := []model.Aspect{
		{Name: "Color", DataType: model.DataTypeString, Required: true},
		{Name: "Release Year", DataType: model.DataTypeDate, Format: "YYYY", MaxLength: 4},
		{Name: "Notes"},
	}
	prompt := buildBatchPrompt(aspects, model.ProductContext{Title: "Red Widget"})

	assert.Contains(t, prompt, "- Color (Type: STRING, Required: Yes)")
	assert.Contains(t, prompt, "- Release Year (Type: DATE, Format: YYYY, Max Length: 4)")
	assert.Contains(t, prompt, "- Notes")
	assert.Contains(t, prompt, "Respond with a JSON object")
}

func TestFormatAdditionalAttributes(t *testing.T) {
	assert.Equal(t, "None", formatAdditionalAttributes(model.ProductContext{}))

	pctx := model.ProductContext{AdditionalAttributes: map[string]string{
		"Material": "Steel",
		"Finish":   "Matte",
	}}
	out := formatAdditionalAttributes(pctx)
	assert.Equal(t, "- Finish: Matte\n- Material: Steel", out)
}

func TestFormatPreviousValuesEmpty(t *testing.T) {
	assert.Equal(t, "No previous values available", formatPreviousValues(nil))
}
