package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lister-backend/internal/model"
)

func TestExtractProductDetails(t *testing.T) {
	result := &model.VisionResult{
		Objects: []model.VisionObject{
			{Name: "Shoe", Confidence: 0.92},
			{Name: "Box", Confidence: 0.60},
		},
		Labels: []model.VisionLabel{
			{Description: "Footwear", Confidence: 0.95},
			{Description: "Sneaker", Confidence: 0.88},
			{Description: "Thing", Confidence: 0.40},
		},
		Text: []string{"NIKE AIR\nSIZE 10", "NIKE", "AIR", "SIZE", "10"},
		Colors: []model.VisionColor{
			{Red: 255, Green: 0, Blue: 0, PixelFraction: 0.5},
			{Red: 0, Green: 0, Blue: 0, PixelFraction: 0.3},
			{Red: 255, Green: 255, Blue: 255, PixelFraction: 0.1},
			{Red: 128, Green: 128, Blue: 128, PixelFraction: 0.05},
		},
	}

	details := ExtractProductDetails(result)

	assert.Equal(t, "Shoe", details.MainObject)
	// Low-confidence labels are dropped.
	assert.Equal(t, []string{"Footwear", "Sneaker"}, details.Attributes)
	// The first text annotation is the whole block; only fragments survive.
	assert.Equal(t, []string{"NIKE", "AIR", "SIZE", "10"}, details.DetectedText)
	// At most three colors, formatted as r, g, b.
	assert.Equal(t, []string{"255, 0, 0", "0, 0, 0", "255, 255, 255"}, details.DominantColors)
}

func TestExtractProductDetailsLabelFallback(t *testing.T) {
	result := &model.VisionResult{
		Labels: []model.VisionLabel{{Description: "Mug", Confidence: 0.9}},
	}
	details := ExtractProductDetails(result)
	assert.Equal(t, "Mug", details.MainObject)
}

func TestExtractProductDetailsEmpty(t *testing.T) {
	details := ExtractProductDetails(&model.VisionResult{})
	assert.Equal(t, "", details.MainObject)
	assert.Empty(t, details.Attributes)
	assert.Empty(t, details.DetectedText)
	assert.Empty(t, details.DominantColors)
}
