package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_PublishPaymentOutcome(t *testing.T) {
	w := &fakeWriter{}
	p := &kafkaPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), writer: w}

	attempt := entities.Attempt{
		TransactionUUID: "TXN-1",
		PayerID:         "stu-42",
		FeeCategory:     entities.FeeTuition,
		TotalAmount:     decimal.RequireFromString("1100.00"),
		Status:          entities.StatusPaid,
		GatewayRef:      "000AWEO",
		UpdatedAt:       time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishPaymentOutcome(context.Background(), attempt))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "stu-42", string(msg.Key))
	assert.Equal(t, "payment.paid", string(msg.Headers[0].Value))

	var event PaymentEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "TXN-1", event.TransactionUUID)
	assert.Equal(t, "1100", event.TotalAmount)
	assert.Equal(t, "paid", event.Status)
	assert.NotContains(t, string(msg.Value), "secret")
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	brokerDown := errors.New("broker down")
	p := &kafkaPublisher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: &fakeWriter{err: brokerDown},
	}

	err := p.PublishPaymentOutcome(context.Background(), entities.Attempt{TransactionUUID: "TXN-1"})
	assert.ErrorIs(t, err, brokerDown)
}
