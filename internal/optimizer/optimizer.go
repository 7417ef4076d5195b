// Package optimizer rewrites a raw product record into a polished,
// SEO-oriented listing draft using the generative backend.
package optimizer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lister-backend/internal/model"
	"lister-backend/internal/suggest"
)

// optimizeTemperature is higher than the extraction temperature: listing
// copy benefits from some variety.
const optimizeTemperature = 0.7

// Service turns product data plus an optional top-performing listing into
// structured listing sections.
type Service struct {
	gen suggest.Generator
}

// NewService creates an optimizer on top of a generative backend.
func NewService(gen suggest.Generator) *Service {
	return &Service{gen: gen}
}

// Optimize generates the listing copy and parses it into named sections.
func (s *Service) Optimize(ctx context.Context, product model.ProductContext, topListing *model.ItemDetails) (map[string]string, error) {
	prompt := buildPrompt(product, topListing)

	text, err := s.gen.Generate(ctx, prompt, suggest.GenerateOptions{
		Temperature: optimizeTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("optimizer: generate: %w", err)
	}
	return parseSections(text), nil
}

func buildPrompt(product model.ProductContext, topListing *model.ItemDetails) string {
	specifics := map[string]string{}
	if topListing != nil {
		specifics = topListing.ItemSpecifics
	}

	modelName := product.Model
	color := product.Color
	size := product.Size
	dimensions := product.Dimensions
	weight := product.Weight
	if modelName == "" {
		modelName = specifics["Model"]
	}
	if color == "" {
		color = specifics["Color"]
	}
	if size == "" {
		size = specifics["Size"]
	}
	if dimensions == "" {
		dimensions = specifics["Dimensions"]
	}
	if weight == "" {
		weight = specifics["Weight"]
	}

	return fmt.Sprintf(`Create an optimized product listing for the following product, strictly adhering to the specified format:

Product Details:

Title: %s
Short Description: %s
Description: %s
UPC: %s
Quantity: %d
Brand: %s
Model: %s
Color: %s
Size: %s
Dimensions: %s
Weight: %s
Additional Attributes:
%s

Listing Sections:

Title: (up to 80 characters, including spaces)
- Create an attention-grabbing, Keyword Rich, SEO-optimized title that is descriptive and persuasive.

Short Description: (up to 150 characters)
- Write a concise, compelling summary of the product.

Description: (up to 2000 characters)
- Write a detailed, informative, and persuasive product description.
- Use bullet points to highlight key features and specifications.
- Organize into concise paragraphs for readability.
- Include relevant measurements (if applicable).
- Mention the item's condition (new or used).
- Incorporate a clear "Add to Cart" call to action to encourage potential buyers.

Unique Selling Points:
- List 3-5 unique selling points.

Key Features:
- List 3-5 key features of the product

Specifications:
- List 3-5 important specifications of the product

Item Specifics:
%s

Tags:
- Generate a mix of 10-20 broad and specific tags, focusing on the product's key features, brand, and category.
- List each tag on a new line starting with a dash (-).
- Generate SEO keywords for the product.

Tone and Style:
- Maintain a friendly and approachable tone throughout the listing.`,
		product.Title, product.Description, product.Description, product.UPC,
		product.Quantity, product.Brand, modelName, color, size, dimensions, weight,
		formatPairs(product.AdditionalAttributes), formatPairs(specifics))
}

func formatPairs(pairs map[string]string) string {
	if len(pairs) == 0 {
		return "None"
	}
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+pairs[k])
	}
	return strings.Join(lines, "\n")
}

// parseSections splits the model output into named sections: a non-empty
// line ending with ':' starts a section, everything until the next header
// belongs to it.
func parseSections(text string) map[string]string {
	sections := make(map[string]string)
	var current string
	var content []string

	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, ":") {
			flush()
			current = strings.TrimSuffix(line, ":")
			content = content[:0]
			continue
		}
		content = append(content, line)
	}
	flush()
	return sections
}
