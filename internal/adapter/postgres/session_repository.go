package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

type sessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) interfaces.SessionRepository {
	return &sessionRepository{pool: pool}
}

func (r *sessionRepository) Create(ctx context.Context, token string, userID int) error {
	query := `INSERT INTO sessions (token, user_id, created_at) VALUES ($1, $2, $3)`
	if _, err := r.pool.Exec(ctx, query, token, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// FindUser resolves a bearer token straight to its account in one
// round trip.
func (r *sessionRepository) FindUser(ctx context.Context, token string) (*domain.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.type, u.is_active
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
	`
	var user domain.User
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.IsActive,
	)
	if err != nil {
		return nil, translateErr(err, "session")
	}
	return &user, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
