package assessment

import (
	"context"

	"github.com/google/uuid"
	"github.com/kinetichq/kinetic/internal/domain"
)

// Store is the persistence boundary for assessment snapshots and the body
// profile. Implemented by the sqlite and postgres stores.
type Store interface {
	Save(ctx context.Context, a *domain.Assessment) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Assessment, error)
	Latest(ctx context.Context) (*domain.Assessment, error)
	History(ctx context.Context, limit int) ([]*domain.Assessment, error)
	SetOverride(ctx context.Context, id uuid.UUID, pattern domain.MovementPattern, level domain.SkillLevel) error
	SaveProfile(ctx context.Context, p domain.BodyProfile) error
	Profile(ctx context.Context) (domain.BodyProfile, error)
}

// Publisher emits level-up events when a new snapshot raises a pattern
// level. Implementations must be safe to call concurrently.
type Publisher interface {
	PublishLevelUps(ctx context.Context, assessmentID uuid.UUID, ups []LevelUp) error
}
