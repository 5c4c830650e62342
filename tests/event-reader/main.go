package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/events"
	"github.com/segmentio/kafka-go"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated broker list")
	topic := flag.String("topic", "fee-payments", "payment outcome topic")
	group := flag.String("group", "event-reader", "consumer group")
	flag.Parse()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(*brokers, ","),
		GroupID: *group,
		Topic:   *topic,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		m, err := reader.ReadMessage(ctx)
		if errors.Is(err, context.Canceled) {
			return
		}
		if err != nil {
			log.Println("failed to read message:", err)
			continue
		}

		var e events.PaymentEvent
		if err := json.Unmarshal(m.Value, &e); err != nil {
			log.Println("malformed event at offset", m.Offset, err)
			continue
		}
		log.Printf("%s payer=%s txn=%s total=%s ref=%s", e.Type, e.PayerID, e.TransactionUUID, e.TotalAmount, e.GatewayRef)
	}
}
