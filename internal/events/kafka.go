// Package events publishes payment outcomes for the fee ledger.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/config"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type PaymentEvent struct {
	EventID         string    `json:"event_id"`
	Type            string    `json:"type"`
	TransactionUUID string    `json:"transaction_uuid"`
	PayerID         string    `json:"payer_id"`
	FeeCategory     string    `json:"fee_category"`
	TotalAmount     string    `json:"total_amount"`
	GatewayRef      string    `json:"gateway_ref,omitempty"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewPaymentEvent(a entities.Attempt) PaymentEvent {
	return PaymentEvent{
		EventID:         uuid.NewString(),
		Type:            "payment." + string(a.Status),
		TransactionUUID: a.TransactionUUID,
		PayerID:         a.PayerID,
		FeeCategory:     string(a.FeeCategory),
		TotalAmount:     entities.FormatAmount(a.TotalAmount),
		GatewayRef:      a.GatewayRef,
		Status:          string(a.Status),
		OccurredAt:      a.UpdatedAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// PublishPaymentOutcome keys messages by payer so a payer's events stay ordered.
func (p *kafkaPublisher) PublishPaymentOutcome(ctx context.Context, a entities.Attempt) error {
	event := NewPaymentEvent(a)
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(a.PayerID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("payment event published", slog.String("transaction_uuid", a.TransactionUUID), slog.String("type", event.Type))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
