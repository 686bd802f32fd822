package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l *slog.Logger
	w *kafka.Writer
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l: l,
		w: w,
	}
}

type notificationCreatedEvent struct {
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	MessageID      uuid.UUID `json:"message_id"`
	Model          string    `json:"model"`
	RecordID       uuid.UUID `json:"record_id"`
}

// SendNotificationCreated publishes the event asynchronously. Delivery is
// best effort: a broker outage must not fail the request that produced
// the notification.
func (p *Producer) SendNotificationCreated(
	ctx context.Context,
	notificationID, userID, messageID uuid.UUID,
	model string,
	recordID uuid.UUID,
) {
	e := notificationCreatedEvent{
		NotificationID: notificationID,
		UserID:         userID,
		MessageID:      messageID,
		Model:          model,
		RecordID:       recordID,
	}

	b, err := json.Marshal(e)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   e.UserID.Bytes(),
		Value: b,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write message: %s", err))
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, args ...any) {
	l.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}
