package rejections

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAppendsRecords(t *testing.T) {
	t.Setenv("REJECTIONS_DIR", t.TempDir())

	require.NoError(t, Write("upc.scan.results", []byte(`{"upc": truncated`), "unexpected end of JSON input"))
	require.NoError(t, Write("upc.scan.results", []byte("not json"), "invalid character"))

	fpath := filepath.Join(dir(), "rejections_"+time.Now().Format("2006-01-02")+".jsonl")
	data, err := os.ReadFile(fpath)
	require.NoError(t, err)

	lines := 0
	for _, line := range splitLines(data) {
		var record map[string]any
		require.NoError(t, json.Unmarshal(line, &record))
		assert.Equal(t, "upc.scan.results", record["topic"])
		assert.NotEmpty(t, record["payload"])
		assert.NotEmpty(t, record["reason"])
		lines++
	}
	assert.Equal(t, 2, lines)
}

func splitLines(data []byte) [][]byte {
	var out [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			if i > start {
				out = append(out, data[start:i])
			}
			start = i + 1
		}
	}
	return out
}
