// Package rejections keeps a durable record of stream messages the
// projector could not process, one JSONL file per day.
package rejections

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func dir() string {
	if v := os.Getenv("REJECTIONS_DIR"); v != "" {
		return v
	}
	return "./data/rejections"
}

// Write appends one rejection record. The raw payload is kept verbatim so
// a malformed message can be inspected or replayed later.
func Write(topic string, raw []byte, reason string) error {
	d := dir()
	if err := os.MkdirAll(d, 0o755); err != nil {
		return err
	}

	fpath := filepath.Join(d, fmt.Sprintf("rejections_%s.jsonl", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	record := map[string]any{
		"topic":     topic,
		"payload":   string(raw),
		"reason":    reason,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}
