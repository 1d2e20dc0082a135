package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tasktracker/internal/model"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// PostgresUserRepository implements UserRepository on database/sql.
type PostgresUserRepository struct {
	DB *sql.DB
}

// NewPostgresUserRepository creates a repository over a PostgreSQL pool.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

var _ UserRepository = (*PostgresUserRepository)(nil)

// Create inserts user and fills in its id and created_at.
func (r *PostgresUserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.DB.QueryRowContext(
		ctx,
		`INSERT INTO users (first_name, last_name, email, password) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	return translateSQLError(err)
}

// FindByID finds a user by id.
func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findOne(ctx,
		`SELECT id, first_name, last_name, email, password, created_at FROM users WHERE id = $1`, id)
}

// FindByEmail finds a user by exact email.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx,
		`SELECT id, first_name, last_name, email, password, created_at FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, translateSQLError(err)
	}
	return &u, nil
}

func translateSQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateKey
	}
	return err
}
