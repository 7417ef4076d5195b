package suggest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"lister-backend/internal/model"
)

var (
	punctuationRe = regexp.MustCompile(`[^\w\s]`)

	stopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
		"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {},
	}
)

// extractKeywords pulls the distinct keywords out of the title and
// description: lower-cased, punctuation stripped, stop words dropped.
// Order is not significant; the result is sorted for stable prompts.
func extractKeywords(pctx model.ProductContext) []string {
	text := pctx.Title + " " + pctx.Description
	text = punctuationRe.ReplaceAllString(text, " ")

	seen := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		seen[word] = struct{}{}
	}

	keywords := make([]string, 0, len(seen))
	for word := range seen {
		keywords = append(keywords, word)
	}
	sort.Strings(keywords)
	return keywords
}

func formatAdditionalAttributes(pctx model.ProductContext) string {
	if len(pctx.AdditionalAttributes) == 0 {
		return "None"
	}
	keys := make([]string, 0, len(pctx.AdditionalAttributes))
	for k := range pctx.AdditionalAttributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %s", k, pctx.AdditionalAttributes[k])
	}
	return b.String()
}

func formatPreviousValues(previous map[string]string) string {
	if len(previous) == 0 {
		return "No previous values available"
	}
	names := make([]string, 0, len(previous))
	for name := range previous {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %s", name, previous[name])
	}
	return b.String()
}

func formatProductDetails(pctx model.ProductContext) string {
	return fmt.Sprintf(`Product Details:

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
Image URLs: %s
Tag Keywords: %s
Category: %s
Additional Attributes:
%s

Previous Successful Values:
%s`,
		pctx.Title, pctx.Description, pctx.Description, pctx.UPC, pctx.Quantity,
		pctx.Brand, pctx.Model, pctx.Color, pctx.Size, pctx.Dimensions, pctx.Weight,
		strings.Join(pctx.Images, ", "),
		strings.Join(extractKeywords(pctx), ", "),
		pctx.Category,
		formatAdditionalAttributes(pctx),
		formatPreviousValues(pctx.PreviousValues))
}

// buildAspectPrompt asks for exactly one bare value for a single aspect.
func buildAspectPrompt(aspectName string, pctx model.ProductContext) string {
	return fmt.Sprintf(`Create an optimized product listing value for the following aspect: %s

%s

Required Output:
Provide ONLY the value for %s. Do not include any explanations or additional text.
If you cannot determine a confident value, respond with an empty string.

Important Guidelines:
1. Be specific and accurate
2. Use standard industry terminology
3. Follow eBay's format requirements
4. Consider category-specific conventions
5. Ensure the value is appropriate for %s

Value:`, aspectName, formatProductDetails(pctx), aspectName, aspectName)
}

// buildBatchPrompt asks for a JSON object of values for every aspect,
// spelling out each aspect's declared constraints.
func buildBatchPrompt(aspects []model.Aspect, pctx model.ProductContext) string {
	lines := make([]string, 0, len(aspects))
	for _, aspect := range aspects {
		var constraints []string
		if aspect.DataType != "" {
			constraints = append(constraints, "Type: "+aspect.DataType)
		}
		if aspect.Format != "" {
			constraints = append(constraints, "Format: "+aspect.Format)
		}
		if aspect.MaxLength > 0 {
			constraints = append(constraints, fmt.Sprintf("Max Length: %d", aspect.MaxLength))
		}
		if aspect.Required {
			constraints = append(constraints, "Required: Yes")
		}

		line := "- " + aspect.Name
		if len(constraints) > 0 {
			line += " (" + strings.Join(constraints, ", ") + ")"
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf(`Create optimized product listing values for multiple aspects.

%s

Required Aspects:
%s

Required Output Format:
Respond with a JSON object where:
- Keys are the aspect names
- Values are the suggested values
- Use empty string if uncertain about any value

Example format:
{
    "Color": "Metallic Blue",
    "Size": "Large",
    "Material": ""
}

Important Guidelines:
1. Be specific and accurate for each aspect
2. Use standard industry terminology
3. Follow the format requirements for each aspect
4. Consider category-specific conventions
5. Ensure values are appropriate for their aspects
6. If uncertain about any value, use an empty string

Response:`, formatProductDetails(pctx), strings.Join(lines, "\n"))
}
