package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/shenikar/ocean_watch/internal/config"
	"github.com/shenikar/ocean_watch/internal/models"
)

// messageWriter - часть kafka-go Writer, нужная для публикации
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher публикует события о новых сообщениях в топик Kafka
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(cfg *config.Config) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaReportsTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	return &KafkaPublisher{writer: w}
}

// Publish отправляет событие с ключом report_id, чтобы события одного сообщения попадали в одну партицию
func (p *KafkaPublisher) Publish(ctx context.Context, event models.ReportEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write report event to kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func serializeToMessage(event models.ReportEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize report event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ReportID.String()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "hazard_type", Value: []byte(event.HazardType)},
			{Key: "severity", Value: []byte(event.Severity)},
			{Key: "submitted_at", Value: []byte(event.SubmittedAt.Format(time.RFC3339))},
		},
	}, nil
}
