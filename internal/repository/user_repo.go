package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"team-member-service/internal/model"
)

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// Create сохраняет пользователя. При занятом username возвращает ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO users (user_id, username, password_hash)
VALUES ($1, $2, $3)
RETURNING user_id, username, password_hash, created_at
`, u.UserID, u.Username, u.PasswordHash)

	var created model.User
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, ErrUserExists
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// GetByUserID возвращает пользователя по user_id или ErrUserNotFound.
func (r *UserRepo) GetByUserID(ctx context.Context, userID string) (model.User, error) {
	return r.getOne(ctx, `
SELECT user_id, username, password_hash, created_at
FROM users
WHERE user_id = $1
`, userID)
}

// GetByUsername возвращает пользователя по username или ErrUserNotFound.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getOne(ctx, `
SELECT user_id, username, password_hash, created_at
FROM users
WHERE username = $1
`, username)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	var u model.User
	if err := q.QueryRow(ctx, query, arg).Scan(&u.UserID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
