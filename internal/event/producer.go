package event

import (
	"context"
	"log/slog"

	"github.com/brandscope/api/internal/domain"
	"github.com/brandscope/api/pkg/kafka"
)

// Kafka topics for brand tracking domain events.
const (
	TopicBrandCreated      = "brand.created"
	TopicCompetitorAdded   = "competitor.added"
	TopicCompetitorRemoved = "competitor.removed"
)

const source = "brandscope"

// Publisher emits domain events. Implementations are best-effort; callers
// log failures and do not fail the originating request.
type Publisher interface {
	BrandCreated(ctx context.Context, brand *domain.Brand) error
	CompetitorAdded(ctx context.Context, competitor *domain.Competitor) error
	CompetitorRemoved(ctx context.Context, competitor *domain.Competitor) error
}

// KafkaPublisher publishes domain events to Kafka, keyed by brand ID so
// events for one brand stay ordered within a partition.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewKafkaPublisher creates a Kafka-backed event publisher.
func NewKafkaPublisher(producer *kafka.Producer, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: logger}
}

func (p *KafkaPublisher) BrandCreated(ctx context.Context, brand *domain.Brand) error {
	evt := kafka.NewEvent(TopicBrandCreated, source, brand)
	return p.producer.Publish(ctx, TopicBrandCreated, brand.ID, evt)
}

func (p *KafkaPublisher) CompetitorAdded(ctx context.Context, competitor *domain.Competitor) error {
	evt := kafka.NewEvent(TopicCompetitorAdded, source, competitor)
	return p.producer.Publish(ctx, TopicCompetitorAdded, competitor.BrandID, evt)
}

func (p *KafkaPublisher) CompetitorRemoved(ctx context.Context, competitor *domain.Competitor) error {
	evt := kafka.NewEvent(TopicCompetitorRemoved, source, competitor)
	return p.producer.Publish(ctx, TopicCompetitorRemoved, competitor.BrandID, evt)
}

// NoopPublisher discards all events. Used when Kafka is not configured.
type NoopPublisher struct{}

func (NoopPublisher) BrandCreated(context.Context, *domain.Brand) error           { return nil }
func (NoopPublisher) CompetitorAdded(context.Context, *domain.Competitor) error   { return nil }
func (NoopPublisher) CompetitorRemoved(context.Context, *domain.Competitor) error { return nil }
