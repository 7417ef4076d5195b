package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBatchResponseJSON(t *testing.T) {
	parsed := parseBatchResponse(`{"Color": "Metallic Blue", "Size": "Large", "Material": ""}`)
	assert.Equal(t, map[string]string{
		"Color":    "Metallic Blue",
		"Size":     "Large",
		"Material": "",
	}, parsed)
}

func TestParseBatchResponseFencedJSON(t *testing.T) {
	parsed := parseBatchResponse("```json\n{\"Color\": \"Red\"}\n```")
	assert.Equal(t, map[string]string{"Color": "Red"}, parsed)
}

func TestParseBatchResponseLineFallback(t *testing.T) {
	// Not valid JSON: the tolerant parser recovers label: value lines.
	text := "Here are the values:\nColor: Red\nSize: Large\n\nMaterial:\nnot a pair at all\n"
	parsed := parseBatchResponse(text)

	assert.Equal(t, "Red", parsed["Color"])
	assert.Equal(t, "Large", parsed["Size"])
	assert.Equal(t, "", parsed["Material"])
	assert.NotContains(t, parsed, "not a pair at all")
}

func TestParseBatchResponseValueWithColon(t *testing.T) {
	parsed := parseBatchResponse("Ratio: 16:9\n")
	// Only the first colon splits.
	assert.Equal(t, "16:9", parsed["Ratio"])
}

func TestParseLineFallbackSkipsEmptyLabels(t *testing.T) {
	parsed := parseLineFallback(": orphan value\nBrand: Acme")
	assert.Equal(t, map[string]string{"Brand": "Acme"}, parsed)
}
