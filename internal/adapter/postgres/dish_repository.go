package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

type dishRepository struct {
	pool *pgxpool.Pool
}

func NewDishRepository(pool *pgxpool.Pool) interfaces.DishRepository {
	return &dishRepository{pool: pool}
}

func (r *dishRepository) Create(ctx context.Context, dish *domain.Dish) error {
	query := `INSERT INTO dishes (name, description, price) VALUES ($1, $2, $3) RETURNING id`
	err := r.pool.QueryRow(ctx, query, dish.Name, dish.Description, dish.Price).Scan(&dish.ID)
	if err != nil {
		return fmt.Errorf("failed to insert dish: %w", translateErr(err, "dish"))
	}
	return nil
}

func (r *dishRepository) FindByID(ctx context.Context, id int) (*domain.Dish, error) {
	query := `SELECT id, name, description, price FROM dishes WHERE id = $1`
	var dish domain.Dish
	err := r.pool.QueryRow(ctx, query, id).Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Price)
	if err != nil {
		return nil, translateErr(err, "dish")
	}
	return &dish, nil
}

func (r *dishRepository) List(ctx context.Context) ([]*domain.Dish, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, price FROM dishes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []*domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Price); err != nil {
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, &dish)
	}
	return dishes, rows.Err()
}

func (r *dishRepository) Update(ctx context.Context, dish *domain.Dish) error {
	query := `UPDATE dishes SET name = $1, description = $2, price = $3 WHERE id = $4`
	tag, err := r.pool.Exec(ctx, query, dish.Name, dish.Description, dish.Price, dish.ID)
	if err != nil {
		return fmt.Errorf("failed to update dish: %w", translateErr(err, "dish"))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dish: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a dish. The FK from order_items is RESTRICT, so a dish
// that appears in any order surfaces as a conflict instead of vanishing
// from history.
func (r *dishRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		return translateErr(err, "dish")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dish: %w", domain.ErrNotFound)
	}
	return nil
}
