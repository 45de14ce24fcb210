package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kinetichq/kinetic/internal/domain"
	"github.com/kinetichq/kinetic/internal/storage"
)

// AssessmentStore implements assessment persistence backed by SQLite.
type AssessmentStore struct {
	db *DB
}

// NewAssessmentStore creates a new SQLite-backed assessment store.
func NewAssessmentStore(db *DB) *AssessmentStore {
	return &AssessmentStore{db: db}
}

// Save inserts a new assessment snapshot. Assessments are append-only;
// there is no update path except for the overrides column.
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

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, taken_at, created_at, bodyweight_tests,
			load_tests, experience_level, overrides)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.TakenAt, a.CreatedAt, string(bodyweight),
		string(load), string(a.ExperienceLevel), string(overrides),
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// Get retrieves an assessment by ID.
func (s *AssessmentStore) Get(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, taken_at, created_at, bodyweight_tests, load_tests,
			experience_level, overrides
		FROM assessments WHERE id = ?`, id.String())

	return scanAssessment(row)
}

// Latest retrieves the most recent assessment snapshot.
func (s *AssessmentStore) Latest(ctx context.Context) (*domain.Assessment, error) {
	row := s.db.QueryRowContext(ctx, `
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
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, taken_at, created_at, bodyweight_tests, load_tests,
			experience_level, overrides
		FROM assessments
		ORDER BY taken_at DESC, created_at DESC
		LIMIT ?`, limit)
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
// The value is stored as chosen; the increase-only rule is applied on read
// by the classifier, never here.
func (s *AssessmentStore) SetOverride(ctx context.Context, id uuid.UUID, pattern domain.MovementPattern, level domain.SkillLevel) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if a.Overrides == nil {
		a.Overrides = make(map[domain.MovementPattern]domain.SkillLevel)
	}
	a.Overrides[pattern] = level

	overrides, err := storage.EncodeOverrides(a.Overrides)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE assessments SET overrides = ? WHERE id = ?`,
		string(overrides), id.String())
	if err != nil {
		return fmt.Errorf("update overrides: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAssessmentNotFound
	}
	return nil
}

// SaveProfile upserts the body profile.
func (s *AssessmentStore) SaveProfile(ctx context.Context, p domain.BodyProfile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO body_profiles (id, weight, unit, updated_at)
		VALUES ('default', ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			weight=excluded.weight,
			unit=excluded.unit,
			updated_at=excluded.updated_at`,
		p.Weight, string(p.Unit), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert body profile: %w", err)
	}
	return nil
}

// Profile retrieves the body profile. A missing row reads as an unknown
// weight with the imperial default, mirroring the engine's degrade-to-zero
// behavior.
func (s *AssessmentStore) Profile(ctx context.Context) (domain.BodyProfile, error) {
	var (
		weight float64
		unit   string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT weight, unit FROM body_profiles WHERE id = 'default'`,
	).Scan(&weight, &unit)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BodyProfile{Unit: domain.Imperial}, nil
	}
	if err != nil {
		return domain.BodyProfile{}, fmt.Errorf("query body profile: %w", err)
	}
	return domain.BodyProfile{Weight: weight, Unit: domain.UnitSystem(unit)}, nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row scanner) (*domain.Assessment, error) {
	var (
		id              string
		a               domain.Assessment
		bodyweight      string
		load            string
		experienceLevel string
		overrides       string
	)
	err := row.Scan(&id, &a.TakenAt, &a.CreatedAt, &bodyweight, &load,
		&experienceLevel, &overrides)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan assessment: %w", err)
	}

	a.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse assessment id: %w", err)
	}
	if err := storage.DecodeTests(&a, []byte(bodyweight), []byte(load)); err != nil {
		return nil, err
	}
	a.ExperienceLevel = domain.SkillLevel(experienceLevel)
	a.Overrides, err = storage.DecodeOverrides([]byte(overrides))
	if err != nil {
		return nil, err
	}
	return &a, nil
}
