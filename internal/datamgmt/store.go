package datamgmt

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("data management record not found")

type Store interface {
	Insert(ctx context.Context, rec *Record) error
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id int64) (*Record, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id int64) error
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const recordColumns = `id, data_source, data_type, data_format, data_owner, data_description, is_active, analysis, last_updated`

func (s *PostgresStore) Insert(ctx context.Context, rec *Record) error {
	const q = `
		INSERT INTO data_management_record (data_source, data_type, data_format, data_owner, data_description, is_active, analysis, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return s.db.QueryRowContext(ctx, q,
		rec.DataSource, rec.DataType, rec.DataFormat, rec.DataOwner,
		rec.DataDescription, rec.IsActive, rec.Analysis, rec.LastUpdated,
	).Scan(&rec.ID)
}

func (s *PostgresStore) List(ctx context.Context) ([]Record, error) {
	const q = `SELECT ` + recordColumns + ` FROM data_management_record ORDER BY id ASC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.DataSource, &rec.DataType, &rec.DataFormat,
			&rec.DataOwner, &rec.DataDescription, &rec.IsActive, &rec.Analysis, &rec.LastUpdated); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (*Record, error) {
	const q = `SELECT ` + recordColumns + ` FROM data_management_record WHERE id = $1`
	rec := &Record{}
	err := s.db.QueryRowContext(ctx, q, id).Scan(&rec.ID, &rec.DataSource, &rec.DataType,
		&rec.DataFormat, &rec.DataOwner, &rec.DataDescription, &rec.IsActive, &rec.Analysis, &rec.LastUpdated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *PostgresStore) Update(ctx context.Context, rec *Record) error {
	const q = `
		UPDATE data_management_record
		SET data_source = $2, data_type = $3, data_format = $4, data_owner = $5,
			data_description = $6, is_active = $7, analysis = $8, last_updated = $9
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, q,
		rec.ID, rec.DataSource, rec.DataType, rec.DataFormat, rec.DataOwner,
		rec.DataDescription, rec.IsActive, rec.Analysis, rec.LastUpdated)
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
	res, err := s.db.ExecContext(ctx, `DELETE FROM data_management_record WHERE id = $1`, id)
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
