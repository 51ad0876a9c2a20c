package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

// Producer publishes record changes. Without brokers it only logs them.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	p := &Producer{
		l:     l,
		topic: topic,
	}

	if len(brokers) == 0 {
		l.Warn("no kafka brokers configured, record events are not published")
		return p
	}

	p.w = &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &debugLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return p
}

// PublishRecordEvent writes event keyed by the record id so changes of one
// record stay ordered within a partition.
func (p *Producer) PublishRecordEvent(ctx context.Context, event entity.RecordEvent) {
	if p.w == nil {
		p.l.DebugContext(ctx, "record event", "type", event.Type, "record", event.Record.ID.String())
		return
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Record.ID.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	if p.w == nil {
		return
	}

	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
