package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/google/uuid"
	"github.com/kinetichq/kinetic/internal/assessment"
)

// sender is the slice of Connection the publisher needs. Narrowed for tests.
type sender interface {
	PublishJSON(ctx context.Context, queue string, data any) error
	IsConnected() bool
}

// Publisher emits LevelUpEvent messages for every skill-level rise detected
// when an assessment is submitted. Publishing is retried with exponential
// backoff; a broker that stays down surfaces as an error to the caller.
type Publisher struct {
	conn    sender
	retrier retry.Retry[struct{}]
	logger  *slog.Logger
}

// NewPublisher creates a publisher on top of an established connection.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return newPublisher(conn, logger)
}

func newPublisher(conn sender, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		conn: conn,
		retrier: retry.New[struct{}](retry.Config{
			MaxAttempts:   3,
			InitialDelay:  500 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			Jitter:        true,
		}),
		logger: logger,
	}
}

// PublishLevelUps publishes one event per level rise. Events share the
// assessment's identity so consumers can group a single submission.
func (p *Publisher) PublishLevelUps(ctx context.Context, assessmentID uuid.UUID, ups []assessment.LevelUp) error {
	if len(ups) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, up := range ups {
		event := LevelUpEvent{
			ID:           uuid.New(),
			AssessmentID: assessmentID,
			Pattern:      up.Pattern,
			From:         up.From,
			To:           up.To,
			OccurredAt:   now,
		}

		_, err := p.retrier.Do(ctx, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, p.conn.PublishJSON(ctx, LevelUpQueueName, event)
		})
		if err != nil {
			return fmt.Errorf("failed to publish level-up for %s: %w", up.Pattern, err)
		}

		p.logger.Info("published level-up event",
			"assessment_id", assessmentID,
			"pattern", up.Pattern,
			"from", up.From,
			"to", up.To,
		)
	}

	return nil
}
