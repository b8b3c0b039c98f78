package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL-backed Store implementation.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed profile store and ensures the
// schema exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			class_section TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'student',
			password_hash TEXT NOT NULL DEFAULT '',
			progress INT NOT NULL DEFAULT 0,
			scores JSONB NOT NULL DEFAULT '{}'::jsonb,
			score_history JSONB NOT NULL DEFAULT '[]'::jsonb,
			completed_modules JSONB NOT NULL DEFAULT '[]'::jsonb,
			asked_questions JSONB NOT NULL DEFAULT '[]'::jsonb,
			streak INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (s *PostgresStore) Create(ctx context.Context, p *Profile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if p.Name == "" {
		return "", fmt.Errorf("profile name is required")
	}

	scores, history, modules, questions, err := marshalProfileColumns(p)
	if err != nil {
		return "", err
	}

	var id string
	err = s.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, class_section, role, password_hash, progress,
		                       scores, score_history, completed_modules, asked_questions, streak)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8::jsonb, $9::jsonb, $10)
		 RETURNING id::text`,
		p.Name, p.ClassSection, string(p.Role), p.PasswordHash, p.Progress,
		scores, history, modules, questions, p.Streak,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create profile: %w", err)
	}
	p.ID = id
	return id, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	return s.getByQuery(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1::uuid`, id)
}

func (s *PostgresStore) GetByName(ctx context.Context, name string) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	return s.getByQuery(ctx, `SELECT `+profileColumns+` FROM profiles WHERE name = $1`, name)
}

func (s *PostgresStore) Save(ctx context.Context, p *Profile) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	scores, history, modules, questions, err := marshalProfileColumns(p)
	if err != nil {
		return err
	}

	cmd, err := s.pool.Exec(ctx,
		`UPDATE profiles
		 SET class_section = $2, role = $3, password_hash = $4, progress = $5,
		     scores = $6::jsonb, score_history = $7::jsonb, completed_modules = $8::jsonb,
		     asked_questions = $9::jsonb, streak = $10, updated_at = NOW()
		 WHERE id = $1::uuid`,
		p.ID, p.ClassSection, string(p.Role), p.PasswordHash, p.Progress,
		scores, history, modules, questions, p.Streak,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	cmd, err := s.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1::uuid`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

const profileColumns = `id::text, name, class_section, role, password_hash, progress,
	scores, score_history, completed_modules, asked_questions, streak, created_at, updated_at`

func (s *PostgresStore) getByQuery(ctx context.Context, query string, args ...any) (*Profile, error) {
	p := &Profile{}
	var role string
	var scores, history, modules, questions []byte

	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.ClassSection, &role, &p.PasswordHash, &p.Progress,
		&scores, &history, &modules, &questions, &p.Streak, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.Role = Role(role)
	if err := json.Unmarshal(scores, &p.Scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if err := json.Unmarshal(history, &p.ScoreHistory); err != nil {
		return nil, fmt.Errorf("decode score history: %w", err)
	}
	if err := json.Unmarshal(modules, &p.CompletedModules); err != nil {
		return nil, fmt.Errorf("decode completed modules: %w", err)
	}
	if err := json.Unmarshal(questions, &p.AskedQuestions); err != nil {
		return nil, fmt.Errorf("decode asked questions: %w", err)
	}
	return p, nil
}

func marshalProfileColumns(p *Profile) (scores, history, modules, questions []byte, err error) {
	if scores, err = json.Marshal(p.Scores.Clamped()); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode scores: %w", err)
	}
	hist := p.ScoreHistory
	if hist == nil {
		hist = []Snapshot{}
	}
	if history, err = json.Marshal(hist); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode score history: %w", err)
	}
	mods := p.CompletedModules
	if mods == nil {
		mods = []string{}
	}
	if modules, err = json.Marshal(mods); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode completed modules: %w", err)
	}
	asked := p.AskedQuestions
	if asked == nil {
		asked = []string{}
	}
	if questions, err = json.Marshal(asked); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode asked questions: %w", err)
	}
	return scores, history, modules, questions, nil
}
