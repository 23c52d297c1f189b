package facades

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

//go:generate mockgen -source=score_events.go -destination=score_events_mock.go -package=facades

// ScoreSubmittedEventType is sent in the "event" header of every score message.
const ScoreSubmittedEventType = "score.submitted"

// KafkaWriter is the part of *kafka.Writer the facade needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// ScoreEventKafkaFacade publishes leaderboard events to Kafka.
type ScoreEventKafkaFacade struct {
	writer KafkaWriter
}

// NewScoreEventKafkaFacade creates a new facade over a Kafka writer.
func NewScoreEventKafkaFacade(writer KafkaWriter) *ScoreEventKafkaFacade {
	return &ScoreEventKafkaFacade{writer: writer}
}

// PublishScoreSubmitted writes the event keyed by user id, so one user's
// scores land on one partition in submission order.
func (f *ScoreEventKafkaFacade) PublishScoreSubmitted(ctx context.Context, event models.ScoreSubmitted) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal score event", "entry_id", event.EntryID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(ScoreSubmittedEventType)},
		},
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish score event", "entry_id", event.EntryID, "error", err)
		return err
	}

	logger.Log.Infow("score event published", "entry_id", event.EntryID, "score", event.Score, "rank", event.Rank)
	return nil
}
