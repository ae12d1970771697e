package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

var ErrUserNotFound = errors.New("user not found")

type Store interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, email, password_hash, role, name,
	business_name, industry, location, years_in_business, phone, website,
	instagram, linkedin, bio, specialties, revenue_model, last_activity, created_at`

func scanUser(row *sql.Row) (*User, error) {
	u := &User{}
	var businessName, industry, location, phone, website sql.NullString
	var instagram, linkedin, bio, specialties, revenueModel, lastActivity sql.NullString
	var yearsInBusiness sql.NullInt64
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name,
		&businessName, &industry, &location, &yearsInBusiness, &phone, &website,
		&instagram, &linkedin, &bio, &specialties, &revenueModel, &lastActivity,
		&u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.BusinessName = businessName.String
	u.Industry = industry.String
	u.Location = location.String
	u.YearsInBusiness = int(yearsInBusiness.Int64)
	u.Phone = phone.String
	u.Website = website.String
	u.Instagram = instagram.String
	u.Linkedin = linkedin.String
	u.Bio = bio.String
	u.Specialties = specialties.String
	u.RevenueModel = revenueModel.String
	u.LastActivity = lastActivity.String
	return u, nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(s.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *PostgresStore) EmailExists(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := s.db.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *PostgresStore) Create(ctx context.Context, u *User) error {
	const q = `
		INSERT INTO users (email, password_hash, role, name,
			business_name, industry, location, years_in_business, phone, website,
			instagram, linkedin, bio, specialties, revenue_model, last_activity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at
	`
	err := s.db.QueryRowContext(ctx, q,
		u.Email, u.PasswordHash, u.Role, u.Name,
		u.BusinessName, u.Industry, u.Location, u.YearsInBusiness, u.Phone, u.Website,
		u.Instagram, u.Linkedin, u.Bio, u.Specialties, u.RevenueModel, u.LastActivity,
		time.Now().UTC(),
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, u *User) error {
	const q = `
		UPDATE users SET name = $2,
			business_name = $3, industry = $4, location = $5, years_in_business = $6,
			phone = $7, website = $8, instagram = $9, linkedin = $10, bio = $11,
			specialties = $12, revenue_model = $13, last_activity = $14
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, q,
		u.ID, u.Name,
		u.BusinessName, u.Industry, u.Location, u.YearsInBusiness,
		u.Phone, u.Website, u.Instagram, u.Linkedin, u.Bio,
		u.Specialties, u.RevenueModel, u.LastActivity,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// isUniqueViolation matches Postgres error class 23505 so the register path
// can report a duplicate email even when it loses the check-then-insert race.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
