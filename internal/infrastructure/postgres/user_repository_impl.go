package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, hashed_password)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, u.Email, u.HashedPassword)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrNotFound
	}
	return r.getBy(ctx, `WHERE reset_token = $1`, token)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}
	var resetToken *string

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, hashed_password, reset_token, created_at, updated_at
		FROM users
	`+where, arg)

	if err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &resetToken,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if resetToken != nil {
		u.ResetToken = *resetToken
	}
	return u, nil
}

func (r *UserRepository) UpdateCredentials(ctx context.Context, id string, upd repository.CredentialUpdate) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET hashed_password = COALESCE($1, hashed_password),
		    reset_token     = CASE WHEN $2::bool THEN NULLIF($3, '') ELSE reset_token END,
		    updated_at      = $4
		WHERE id = $5
	`, upd.HashedPassword, upd.ResetToken != nil, deref(upd.ResetToken), time.Now(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ConsumeResetToken is a single conditional UPDATE so the hash swap and the
// token clear are atomic with respect to concurrent readers and a second
// consume of the same token matches zero rows.
func (r *UserRepository) ConsumeResetToken(ctx context.Context, token, hashedPassword string) error {
	if token == "" {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET hashed_password = $1, reset_token = NULL, updated_at = $2
		WHERE reset_token = $3
	`, hashedPassword, time.Now(), token)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ repository.UserRepository = (*UserRepository)(nil)
