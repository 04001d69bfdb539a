package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MuriloBarros304/web-menu/internal/domain"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// translateErr maps driver errors onto the domain error kinds: missing
// rows become not-found, restricted foreign keys become conflicts and
// unique violations become validation errors.
func translateErr(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return fmt.Errorf("%s is referenced by other records: %w", entity, domain.ErrConflict)
		case codeUniqueViolation:
			return domain.Validationf("%s already exists", entity)
		}
	}
	return err
}
