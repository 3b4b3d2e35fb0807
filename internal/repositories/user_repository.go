package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rotisserie/eris"

	"impactio/internal/models"
)

var ErrUserNotFound = eris.New("user not found")

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, email, COALESCE(name, ''), password_hash, created_at
		FROM users
		WHERE lower(email) = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, q, strings.ToLower(strings.TrimSpace(email))))
}

func (r *userRepository) scanOne(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "users: scan")
	}
	return u, nil
}
