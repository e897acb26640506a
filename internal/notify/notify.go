// Package notify delivers seller-facing notifications about compliance
// progress. Delivery is fire-and-forget: the submission path never blocks on
// or fails because of a notification.
package notify

import (
	"context"
	"log/slog"
	"time"

	"veripay/pkg/domain"
)

// Kind classifies notifications for downstream routing.
type Kind string

const (
	KindDocumentReceived     Kind = "document_received"
	KindTaxIDReceived        Kind = "tax_id_received"
	KindVerificationComplete Kind = "verification_complete"
	KindVerificationFailed   Kind = "verification_failed"
)

// Message is a seller notification.
type Message struct {
	Timestamp time.Time       `json:"timestamp"`
	SellerID  domain.SellerID `json:"seller_id"`
	Kind      Kind            `json:"kind"`
	Body      string          `json:"body"`
}

// Sink delivers messages to a downstream channel (Kafka topic, memory for
// tests).
type Sink interface {
	Publish(ctx context.Context, msg Message) error
}

// Notifier queues messages for background delivery. Emit never blocks: when
// the inbox is full the message is dropped and counted, since a notification
// is advisory and must not back-pressure submissions.
type Notifier struct {
	sink   Sink
	inbox  chan Message
	logger *slog.Logger
}

func NewNotifier(sink Sink, buffer int, logger *slog.Logger) *Notifier {
	if buffer <= 0 {
		buffer = 256
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sink:   sink,
		inbox:  make(chan Message, buffer),
		logger: logger,
	}
}

// Emit queues a message for delivery. Safe on a nil Notifier.
func (n *Notifier) Emit(ctx context.Context, msg Message) {
	if n == nil || n.sink == nil {
		return
	}
	select {
	case n.inbox <- msg:
	default:
		n.logger.WarnContext(ctx, "notification dropped, inbox full",
			"seller_id", msg.SellerID, "kind", msg.Kind)
	}
}

// Run drains the inbox until ctx is cancelled. Delivery failures are logged
// and the message is discarded.
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-n.inbox:
			if err := n.sink.Publish(ctx, msg); err != nil {
				n.logger.ErrorContext(ctx, "notification delivery failed",
					"seller_id", msg.SellerID, "kind", msg.Kind, "error", err)
			}
		}
	}
}
