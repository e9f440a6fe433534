package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	coreport "github.com/multinvest/platform/internal/domain/port/core"
	"github.com/segmentio/kafka-go"
)

// event is the wire format for balance-moving audit events
type event struct {
	Kind      string    `json:"kind"`
	UserID    uint64    `json:"user_id"`
	RequestID uint64    `json:"request_id"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// KafkaNotifier publishes audit events to a Kafka topic. Publishing is best
// effort: failures are logged and never surfaced to the triggering operation.
type KafkaNotifier struct {
	writer       *kafka.Writer
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewKafkaNotifier creates a notifier publishing to the given brokers and topic
func NewKafkaNotifier(brokers []string, topic string, logger coreport.Logger, timeProvider coreport.TimeProvider) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Compression:  kafka.Snappy,
		BatchTimeout: 10 * time.Millisecond,
	}

	logger.Info("Kafka notifier initialized", map[string]any{
		"topic": topic,
	})

	return &KafkaNotifier{
		writer:       writer,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// InvestmentApproved publishes an investment approval event
func (n *KafkaNotifier) InvestmentApproved(ctx context.Context, userID, investmentID uint64, amount string) {
	n.publish(ctx, event{
		Kind:      "investment_approved",
		UserID:    userID,
		RequestID: investmentID,
		Amount:    amount,
		Timestamp: n.timeProvider.Now(),
	})
}

// WithdrawalRequested publishes a withdrawal submission event
func (n *KafkaNotifier) WithdrawalRequested(ctx context.Context, userID, withdrawalID uint64, amount string) {
	n.publish(ctx, event{
		Kind:      "withdrawal_requested",
		UserID:    userID,
		RequestID: withdrawalID,
		Amount:    amount,
		Timestamp: n.timeProvider.Now(),
	})
}

func (n *KafkaNotifier) publish(ctx context.Context, evt event) {
	payload, err := json.Marshal(evt)
	if err != nil {
		n.logger.Error("Failed to marshal notification event", map[string]any{
			"kind":  evt.Kind,
			"error": err.Error(),
		})
		return
	}

	message := kafka.Message{
		Key:   []byte(fmt.Sprintf("user_%d", evt.UserID)),
		Value: payload,
		Time:  evt.Timestamp,
	}

	if err := n.writer.WriteMessages(ctx, message); err != nil {
		n.logger.Error("Failed to publish notification event", map[string]any{
			"kind":  evt.Kind,
			"error": err.Error(),
		})
		return
	}

	n.logger.Debug("Notification event published", map[string]any{
		"kind":       evt.Kind,
		"user_id":    evt.UserID,
		"request_id": evt.RequestID,
	})
}

// Close releases the underlying writer
func (n *KafkaNotifier) Close() error {
	if n.writer == nil {
		return nil
	}
	n.logger.Info("Closing Kafka notifier", nil)
	return n.writer.Close()
}
