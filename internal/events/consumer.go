package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"lister-backend/internal/bloom"
	"lister-backend/internal/model"
	"lister-backend/internal/rejections"
)

const (
	recentScansKey = "scans:recent"
	recentScansMax = 100
)

// kafkaReader creates a consumer-group reader using segmentio/kafka-go.
func kafkaReader(topic, groupID string) *kafka.Reader {
	broker := getenv("KAFKA_BROKER", "kafka:9092")
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,          // consumer group enables load balancing
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,      // auto-commit interval for offsets
	})
}

// Projector consumes scan events and maintains the Redis read side: a
// capped recent-scan list, a per-code scan counter and a distinct-code
// counter backed by a Bloom filter.
type Projector struct {
	rdb    *redis.Client
	filter *bloom.Filter
}

// NewProjector creates a projector on the given Redis client.
func NewProjector(ctx context.Context, rdb *redis.Client) *Projector {
	return &Projector{
		rdb:    rdb,
		filter: bloom.NewFilter(ctx, rdb),
	}
}

// ConsumeScanTopic reads the scan topic until ctx is cancelled, projecting
// each event into Redis. Malformed messages are skipped.
func (p *Projector) ConsumeScanTopic(ctx context.Context) error {
	reader := kafkaReader(scanTopic, "scan-projector-group")
	defer reader.Close()

	log.Printf("projector: consuming from %s", scanTopic)

	for {
		// segmentio/kafka-go: ReadMessage blocks until a message arrives
		// and handles group coordination and offset commits.
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var evt model.ScanEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			log.Printf("projector: skip malformed event: %v", err)
			if werr := rejections.Write(scanTopic, msg.Value, err.Error()); werr != nil {
				log.Printf("projector: write rejection: %v", werr)
			}
			continue
		}

		if err := p.project(ctx, msg.Value, evt); err != nil {
			log.Printf("projector: project %s: %v", evt.UPC, err)
		}
	}
}

func (p *Projector) project(ctx context.Context, raw []byte, evt model.ScanEvent) error {
	// redis/go-redis/v9: LPush + LTrim keep a capped most-recent-first list.
	if err := p.rdb.LPush(ctx, recentScansKey, raw).Err(); err != nil {
		return err
	}
	if err := p.rdb.LTrim(ctx, recentScansKey, 0, recentScansMax-1).Err(); err != nil {
		return err
	}
	if err := p.rdb.Incr(ctx, "scans:count:"+evt.UPC).Err(); err != nil {
		return err
	}
	if !p.filter.Seen(ctx, evt.UPC) {
		return p.rdb.Incr(ctx, "scans:distinct").Err()
	}
	return nil
}

// RecentScans returns the newest scan events, most recent first.
func (p *Projector) RecentScans(ctx context.Context, limit int) ([]model.ScanEvent, error) {
	if limit <= 0 || limit > recentScansMax {
		limit = recentScansMax
	}
	raws, err := p.rdb.LRange(ctx, recentScansKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]model.ScanEvent, 0, len(raws))
	for _, raw := range raws {
		var evt model.ScanEvent
		if err := json.Unmarshal([]byte(raw), &evt); err != nil {
			continue
		}
		out = append(out, evt)
	}
	return out, nil
}
