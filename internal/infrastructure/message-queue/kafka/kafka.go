package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alimikegami/shopping-cart-service/config"
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const defaultMaxRetries = 3

type messageWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

// Publisher writes dto.KafkaMessage envelopes to a single topic partition.
type Publisher struct {
	writer     messageWriter
	cb         *gobreaker.CircuitBreaker[[]byte]
	maxRetries int
	backoff    time.Duration
}

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	return kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
}

func CreatePublisher(conn *kafka.Conn, cb *gobreaker.CircuitBreaker[[]byte]) *Publisher {
	return newPublisher(conn, cb, time.Second)
}

func newPublisher(writer messageWriter, cb *gobreaker.CircuitBreaker[[]byte], backoff time.Duration) *Publisher {
	return &Publisher{
		writer:     writer,
		cb:         cb,
		maxRetries: defaultMaxRetries,
		backoff:    backoff,
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType string, key string, data interface{}) (err error) {
	jsonMsg, err := json.Marshal(dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	for i := 0; i < p.maxRetries; i++ {
		_, err = p.cb.Execute(func() ([]byte, error) {
			_, err := p.writer.WriteMessages(kafka.Message{
				Key:   []byte(key),
				Value: jsonMsg,
			})
			return nil, err
		})
		if err == nil {
			return nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", eventType).Int("attempt", i+1).Msg("")

		// the breaker rejects without calling the broker; waiting will not change that
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("failed to write Kafka message: %w", err)
		}

		if i == p.maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", p.maxRetries, err)
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("event_type", eventType).Msg("broker not configured, event dropped")
	return nil
}
