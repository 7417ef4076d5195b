package suggest

import (
	"regexp"
	"strings"
	"unicode"

	"lister-backend/internal/model"
)

// Evidence weights for the additive confidence model. They sum to 1.0 and
// the result is clamped there.
const (
	weightTitle         = 0.30
	weightDescription   = 0.20
	weightPrevious      = 0.20
	weightCategory      = 0.15
	weightWellFormatted = 0.15
)

var (
	numberUnitRe = regexp.MustCompile(`^\d+(\.\d+)?\s*(cm|mm|in|kg|g|oz|lb|ml|L)?$`)
	datePatternRe = regexp.MustCompile(`^\d{4}(-\d{2}){0,2}$`)
)

// Score computes a confidence score in [0, 1] for a candidate aspect value.
// It is a pure function of its inputs: each evidence signal that matches
// adds its weight, and the sum is clamped to 1.0.
func Score(value, aspectName string, pctx model.ProductContext) float64 {
	if value == "" {
		return 0.0
	}

	confidence := 0.0
	valueLower := strings.ToLower(value)

	if strings.Contains(strings.ToLower(pctx.Title), valueLower) {
		confidence += weightTitle
	}
	if strings.Contains(strings.ToLower(pctx.Description), valueLower) {
		confidence += weightDescription
	}
	if prev, ok := pctx.PreviousValues[aspectName]; ok {
		confidence += similarityRatio(valueLower, strings.ToLower(prev)) * weightPrevious
	}
	if strings.Contains(strings.ToLower(pctx.Category), valueLower) {
		confidence += weightCategory
	}
	if isWellFormatted(value) {
		confidence += weightWellFormatted
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// AttributeSource reports which context field the value plausibly came
// from, first match wins: title, description, previous values, else the
// model invented it.
func AttributeSource(value string, pctx model.ProductContext) string {
	if value == "" {
		return model.SourceNone
	}

	valueLower := strings.ToLower(value)
	switch {
	case strings.Contains(strings.ToLower(pctx.Title), valueLower):
		return model.SourceTitle
	case strings.Contains(strings.ToLower(pctx.Description), valueLower):
		return model.SourceDescription
	case previousValuesContain(pctx.PreviousValues, valueLower):
		return model.SourcePreviousValues
	default:
		return model.SourceAIGenerated
	}
}

func previousValuesContain(previous map[string]string, valueLower string) bool {
	for name, v := range previous {
		if strings.Contains(strings.ToLower(name), valueLower) ||
			strings.Contains(strings.ToLower(v), valueLower) {
			return true
		}
	}
	return false
}

// similarityRatio is a normalized longest-common-subsequence ratio in
// [0, 1]: identical strings score 1.0, disjoint strings near 0.0.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	lcs := lcsLength(a, b)
	return 2.0 * float64(lcs) / float64(len(a)+len(b))
}

func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// isWellFormatted accepts title/sentence case, a number with an optional
// common unit, or a YYYY / YYYY-MM / YYYY-MM-DD date.
func isWellFormatted(value string) bool {
	runes := []rune(value)
	if len(runes) > 0 && unicode.IsUpper(runes[0]) {
		for _, r := range runes[1:] {
			if unicode.IsLower(r) {
				return true
			}
		}
	}
	if numberUnitRe.MatchString(value) {
		return true
	}
	return datePatternRe.MatchString(value)
}
