package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"socihub/config"
	"socihub/infras/kafka"
	"socihub/internal/domains/reservation/model"
)

type Publisher interface {
	ReservationCreated(ctx context.Context, booking model.Booking)
	ReservationUpdated(ctx context.Context, booking model.Booking)
	ReservationCancelled(ctx context.Context, booking model.Booking)
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
}

func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
	}
}

func (p *publisherImpl) ReservationCreated(ctx context.Context, booking model.Booking) {
	p.publish(ctx, TopicReservationCreated, booking)
}

func (p *publisherImpl) ReservationUpdated(ctx context.Context, booking model.Booking) {
	p.publish(ctx, TopicReservationUpdated, booking)
}

func (p *publisherImpl) ReservationCancelled(ctx context.Context, booking model.Booking) {
	p.publish(ctx, TopicReservationCancelled, booking)
}

func (p *publisherImpl) publish(ctx context.Context, topic string, booking model.Booking) {
	if !p.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: NewReservationEvent(booking),
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("bookingID", booking.ID).Msg("failed to publish reservation event")
	}
}
