package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-delivery/utils"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

// NewKafkaWriter returns an async writer. Delivery failures surface in the
// error log, never in the request that produced the event.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		Async:                  true,
		Completion:             logDelivery,
	}
}

func logDelivery(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	utils.ErrorLogger.WithFields(logrus.Fields{
		"messages": len(messages),
	}).WithError(err).Error("kafka: failed to deliver order events")
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish keys messages by order id so one order's events stay on one
// partition, in order.
func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}
	if err := p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.OrderID), 10)),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("kafka: write %s for order %d: %w", ev.Type, ev.OrderID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.Writer.Close()
}
