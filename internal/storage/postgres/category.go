package postgres

import (
	"context"
	"log/slog"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepo backs the category directory: name resolution only, category
// management is outside this service.
type CategoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCategoryRepo(pool *pgxpool.Pool, logger *slog.Logger) *CategoryRepo {
	return &CategoryRepo{pool: pool, logger: logger}
}

// Resolve maps category names to full references. Names with no backing row
// are simply absent from the result; the caller decides whether that is an
// error.
func (p *CategoryRepo) Resolve(ctx context.Context, names []string) ([]domain.Category, error) {
	const op = "postgres.Category.Resolve"

	const query = `SELECT id, name FROM categories WHERE name = ANY($1)`

	rows, err := p.pool.Query(ctx, query, names)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	cats := make([]domain.Category, 0, len(names))
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return cats, nil
}
