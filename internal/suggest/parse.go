package suggest

import (
	"encoding/json"
	"strings"
)

// parseBatchResponse turns the backend's batch output into aspect-name to
// value pairs. The strict path expects a JSON object of strings; when that
// fails, a tolerant fallback treats every non-empty "label: value" line as
// one suggestion. Models wrap JSON in code fences often enough that fences
// are stripped before the strict parse.
func parseBatchResponse(text string) map[string]string {
	trimmed := stripCodeFences(text)

	var parsed map[string]string
	if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
		return parsed
	}

	return parseLineFallback(text)
}

func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	return strings.TrimSpace(trimmed)
}

// parseLineFallback recovers suggestions from free-form model output, one
// "label: value" pair per line. Lines without a colon are skipped.
func parseLineFallback(text string) map[string]string {
	results := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		results[name] = strings.TrimSpace(value)
	}
	return results
}
