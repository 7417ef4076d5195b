// Package events carries scan outcomes over Kafka and projects them into
// Redis for the recent-scan read side.
package events

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/segmentio/kafka-go"

	"lister-backend/internal/model"
)

// scanTopic records every UPC scan outcome, successful or not.
const scanTopic = "upc.scan.results"

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// kafkaWriter constructs a producer using segmentio/kafka-go.
// kafka.Writer batches asynchronously so scan responses never wait on the
// broker.
func kafkaWriter(topic string) *kafka.Writer {
	broker := getenv("KAFKA_BROKER", "kafka:9092")
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},  // segmentio/kafka-go: partition selection strategy
		RequiredAcks: kafka.RequireOne,     // wait for leader ack only
		Async:        true,                 // non-blocking writes
	}
}

// Publisher writes scan events to the stream.
type Publisher struct{}

// NewPublisher creates a scan-event publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// PublishScanResult sends one scan outcome to the scan topic, keyed by UPC
// so repeated scans of the same code stay ordered within a partition.
func (p *Publisher) PublishScanResult(ctx context.Context, evt model.ScanEvent) error {
	w := kafkaWriter(scanTopic)
	defer w.Close()

	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(evt.UPC),
		Value: data,
		Time:  time.Now(),
	}
	// segmentio/kafka-go: WriteMessages publishes asynchronously.
	return w.WriteMessages(ctx, msg)
}
