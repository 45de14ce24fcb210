// Package postgres provides the pgx-backed assessment store used in server
// deployments. The schema matches the SQLite migrations; provisioning it is
// the deployment's concern.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kinetichq/kinetic/internal/domain"
	"github.com/kinetichq/kinetic/internal/storage"
)

// AssessmentStore implements assessment persistence backed by PostgreSQL.
type AssessmentStore struct {
	pool *pgxpool.Pool
}

// NewAssessmentStore creates a new PostgreSQL assessment store.
func NewAssessmentStore(pool *pgxpool.Pool) *AssessmentStore {
	return &AssessmentStore{pool: pool}
}

// Connect opens a pgx pool and verifies connectivity.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Save inserts a new assessment snapshot.
func (s *AssessmentStore) Save(ctx context.Context, a *domain.Assessment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.TakenAt.IsZero() {
		a.TakenAt = a.CreatedAt
	}

	bodyweight, load, err := storage.EncodeTests(a)
	if err != nil {
		return err
	}
	overrides, err := storage.EncodeOverrides(a.Overrides)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO assessments (id, taken_at, created_at, bodyweight_tests,
			load_tests, experience_level, overrides)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.TakenAt, a.CreatedAt, bodyweight, load,
		string(a.ExperienceLevel), overrides,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// Get retrieves an assessment by ID.
func (s *AssessmentStore) Get(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, taken_at, created_at, bodyweight_tests, load_tests,
			experience_level, overrides
		FROM assessments WHERE id = $1`, id)

	return scanAssessment(row)
}

// Latest retrieves the most recent assessment snapshot.
func (s *AssessmentStore) Latest(ctx context.Context) (*domain.Assessment, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, taken_at, created_at, bodyweight_tests, load_tests,
			experience_level, overrides
		FROM assessments
		ORDER BY taken_at DESC, created_at DESC
		LIMIT 1`)

	return scanAssessment(row)
}

// History lists assessments newest first, up to limit.
func (s *AssessmentStore) History(ctx context.Context, limit int) ([]*domain.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, taken_at, created_at, bodyweight_tests, load_tests,
			experience_level, overrides
		FROM assessments
		ORDER BY taken_at DESC, created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetOverride writes a manual level override onto an existing assessment.
// Stored as chosen; the increase-only rule is enforced on read.
func (s *AssessmentStore) SetOverride(ctx context.Context, id uuid.UUID, pattern domain.MovementPattern, level domain.SkillLevel) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE assessments
		SET overrides = overrides || jsonb_build_object($2::text, $3::text)
		WHERE id = $1`,
		id, string(pattern), string(level))
	if err != nil {
		return fmt.Errorf("update overrides: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

// SaveProfile upserts the body profile.
func (s *AssessmentStore) SaveProfile(ctx context.Context, p domain.BodyProfile) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO body_profiles (id, weight, unit, updated_at)
		VALUES ('default', $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			weight = EXCLUDED.weight,
			unit = EXCLUDED.unit,
			updated_at = EXCLUDED.updated_at`,
		p.Weight, string(p.Unit), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert body profile: %w", err)
	}
	return nil
}

// Profile retrieves the body profile.
func (s *AssessmentStore) Profile(ctx context.Context) (domain.BodyProfile, error) {
	var (
		weight float64
		unit   string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT weight, unit FROM body_profiles WHERE id = 'default'`,
	).Scan(&weight, &unit)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.BodyProfile{Unit: domain.Imperial}, nil
	}
	if err != nil {
		return domain.BodyProfile{}, fmt.Errorf("query body profile: %w", err)
	}
	return domain.BodyProfile{Weight: weight, Unit: domain.UnitSystem(unit)}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row scanner) (*domain.Assessment, error) {
	var (
		a               domain.Assessment
		bodyweight      []byte
		load            []byte
		experienceLevel string
		overrides       []byte
	)
	err := row.Scan(&a.ID, &a.TakenAt, &a.CreatedAt, &bodyweight, &load,
		&experienceLevel, &overrides)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan assessment: %w", err)
	}

	if err := storage.DecodeTests(&a, bodyweight, load); err != nil {
		return nil, err
	}
	a.ExperienceLevel = domain.SkillLevel(experienceLevel)
	a.Overrides, err = storage.DecodeOverrides(overrides)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
