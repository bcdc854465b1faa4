package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/filari/revenue-service/internal/domain"
	"github.com/filari/revenue-service/internal/usecase/revenue"
)

// FilingEvent is the completion event emitted by the filing service for a
// transaction whose revenue should now be computed.
type FilingEvent struct {
	TransactionID string `json:"transaction_id"`
}

// FilingConsumer reads filing-completion events and triggers breakdown
// computation. An event for an already-priced transaction is a no-op: the
// once-only write makes redelivery safe.
type FilingConsumer struct {
	Subscriber domain.SubscriberPort
	Usecase    revenue.RevenueUsecase
	Topic      string
	GroupID    string
}

func NewFilingConsumer(subscriber domain.SubscriberPort, uc revenue.RevenueUsecase, topic, groupID string) *FilingConsumer {
	return &FilingConsumer{
		Subscriber: subscriber,
		Usecase:    uc,
		Topic:      topic,
		GroupID:    groupID,
	}
}

func (c *FilingConsumer) Run(ctx context.Context) error {
	messages, err := c.Subscriber.Subscribe(c.Topic, c.GroupID)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			c.handle(msg)
		}
	}
}

func (c *FilingConsumer) handle(msg domain.Message) {
	var event FilingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		slog.Error("malformed filing event", "error", err.Error())
		return
	}
	if event.TransactionID == "" {
		slog.Error("filing event without transaction id")
		return
	}

	if _, err := c.Usecase.ComputeTransactionRevenue(event.TransactionID); err != nil {
		if errors.Is(err, domain.ErrRevenueAlreadyCalculated) {
			slog.Info("revenue already calculated, skipping", "transaction_id", event.TransactionID)
			return
		}
		slog.Error("failed to compute transaction revenue", "transaction_id", event.TransactionID, "error", err.Error())
	}
}
