package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

type tableRepository struct {
	pool *pgxpool.Pool
}

func NewTableRepository(pool *pgxpool.Pool) interfaces.TableRepository {
	return &tableRepository{pool: pool}
}

func (r *tableRepository) Create(ctx context.Context, table *domain.Table) error {
	query := `
		INSERT INTO tables (number, capacity, is_available, validation_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query, table.Number, table.Capacity, table.IsAvailable, table.ValidationCode).Scan(&table.ID)
	if err != nil {
		return fmt.Errorf("failed to insert table: %w", translateErr(err, "table"))
	}
	return nil
}

func (r *tableRepository) FindByID(ctx context.Context, id int) (*domain.Table, error) {
	query := `SELECT id, number, capacity, is_available, validation_code FROM tables WHERE id = $1`
	var table domain.Table
	err := r.pool.QueryRow(ctx, query, id).Scan(&table.ID, &table.Number, &table.Capacity, &table.IsAvailable, &table.ValidationCode)
	if err != nil {
		return nil, translateErr(err, "table")
	}
	return &table, nil
}

func (r *tableRepository) List(ctx context.Context) ([]*domain.Table, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, number, capacity, is_available, validation_code FROM tables ORDER BY number ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []*domain.Table
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.Number, &table.Capacity, &table.IsAvailable, &table.ValidationCode); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, &table)
	}
	return tables, rows.Err()
}

func (r *tableRepository) Update(ctx context.Context, table *domain.Table) error {
	query := `
		UPDATE tables
		SET number = $1, capacity = $2, is_available = $3, validation_code = $4
		WHERE id = $5
	`
	tag, err := r.pool.Exec(ctx, query, table.Number, table.Capacity, table.IsAvailable, table.ValidationCode, table.ID)
	if err != nil {
		return fmt.Errorf("failed to update table: %w", translateErr(err, "table"))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *tableRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return translateErr(err, "table")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table: %w", domain.ErrNotFound)
	}
	return nil
}
