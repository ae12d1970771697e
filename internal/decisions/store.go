package decisions

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrNotFound = errors.New("credit decision not found")

type Store interface {
	Insert(ctx context.Context, d *Decision) error
	List(ctx context.Context) ([]Decision, error)
	Get(ctx context.Context, id int64) (*Decision, error)
	Update(ctx context.Context, d *Decision) error
	Delete(ctx context.Context, id int64) error
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, d *Decision) error {
	const q = `
		INSERT INTO credit_decision (revenue, sector, behavior_data, score, tier, rationale, visuals, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return s.db.QueryRowContext(ctx, q,
		d.Revenue, d.Sector, d.BehaviorData, d.Score, d.Tier, d.Rationale, d.Visuals,
		time.Now().UTC(),
	).Scan(&d.ID, &d.CreatedAt)
}

func (s *PostgresStore) List(ctx context.Context) ([]Decision, error) {
	const q = `
		SELECT id, revenue, sector, behavior_data, score, tier, rationale, visuals, created_at
		FROM credit_decision ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Decision
	for rows.Next() {
		var d Decision
		if err := rows.Scan(&d.ID, &d.Revenue, &d.Sector, &d.BehaviorData,
			&d.Score, &d.Tier, &d.Rationale, &d.Visuals, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (*Decision, error) {
	const q = `
		SELECT id, revenue, sector, behavior_data, score, tier, rationale, visuals, created_at
		FROM credit_decision WHERE id = $1
	`
	d := &Decision{}
	err := s.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Revenue, &d.Sector,
		&d.BehaviorData, &d.Score, &d.Tier, &d.Rationale, &d.Visuals, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *PostgresStore) Update(ctx context.Context, d *Decision) error {
	const q = `
		UPDATE credit_decision
		SET revenue = $2, sector = $3, behavior_data = $4, score = $5, tier = $6, rationale = $7, visuals = $8
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, q,
		d.ID, d.Revenue, d.Sector, d.BehaviorData, d.Score, d.Tier, d.Rationale, d.Visuals)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM credit_decision WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
