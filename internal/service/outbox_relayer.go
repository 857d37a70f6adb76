package service

import (
	"context"
	"time"

	"Tieba_Community/internal/model"
	"Tieba_Community/internal/pkg"
	"Tieba_Community/internal/repository/mysql"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Sender delivers one outbox event. Delivery is at-least-once: a send error
// leaves the row flagged for a later pass.
type Sender func(ctx context.Context, ev *model.EngagementOutbox) error

type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	log       zerolog.Logger
}

func NewOutboxRelayer(db *gorm.DB, sender Sender, log zerolog.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		log:       log,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		r.log.Error().Err(err).Msg("outbox query failed")
		return
	}
	for i := range rows {
		ev := rows[i]
		if err := r.sender(ctx, &ev); err != nil {
			r.log.Warn().Err(err).Uint64("id", ev.ID).Str("event", ev.EventType).Msg("outbox send failed")
			if err := r.repo.MarkFailed(ctx, ev.ID); err != nil {
				r.log.Error().Err(err).Uint64("id", ev.ID).Msg("outbox mark-failed update failed")
			}
			continue
		}
		// An unflagged sent row is re-delivered next tick, so a failed
		// update here means duplicate delivery, not loss.
		if err := r.repo.MarkSent(ctx, ev.ID); err != nil {
			r.log.Error().Err(err).Uint64("id", ev.ID).Msg("outbox mark-sent update failed")
		}
	}
}

// KafkaSender publishes events keyed by actor.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ev *model.EngagementOutbox) error {
		return producer.Send(ctx, pkg.EventKey(ev.ActorID), []byte(ev.Payload))
	}
}

// LogSender stands in when no broker is configured.
func LogSender(log zerolog.Logger) Sender {
	return func(ctx context.Context, ev *model.EngagementOutbox) error {
		log.Info().
			Str("event", ev.EventType).
			Uint64("actor", ev.ActorID).
			Uint64("target", ev.TargetID).
			Msg("outbox event")
		return nil
	}
}
