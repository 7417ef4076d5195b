package vision

import (
	"fmt"

	"lister-backend/internal/model"
)

// labelConfidenceFloor filters out generic low-confidence labels.
const labelConfidenceFloor = 0.7

// ExtractProductDetails digests a raw annotation into the fields a listing
// draft needs: the main object, descriptive attributes, any visible text
// (brand names, model numbers) and the dominant colors.
func ExtractProductDetails(result *model.VisionResult) model.ProductDetails {
	details := model.ProductDetails{
		Attributes:     []string{},
		DetectedText:   []string{},
		DominantColors: []string{},
	}

	switch {
	case len(result.Objects) > 0:
		details.MainObject = result.Objects[0].Name
	case len(result.Labels) > 0:
		details.MainObject = result.Labels[0].Description
	}

	for _, label := range result.Labels {
		if label.Confidence > labelConfidenceFloor {
			details.Attributes = append(details.Attributes, label.Description)
		}
	}

	// The first text annotation is the full block; the rest are the
	// individual fragments worth keeping.
	if len(result.Text) > 1 {
		details.DetectedText = append(details.DetectedText, result.Text[1:]...)
	}

	for i, color := range result.Colors {
		if i == 3 {
			break
		}
		details.DominantColors = append(details.DominantColors,
			fmt.Sprintf("%d, %d, %d", color.Red, color.Green, color.Blue))
	}
	return details
}
