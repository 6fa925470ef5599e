package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCommentRepo(pool *pgxpool.Pool, logger *slog.Logger) *CommentRepo {
	return &CommentRepo{pool: pool, logger: logger}
}

func (p *CommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	const op = "postgres.Comment.Create"

	const query = `
		INSERT INTO comments (id, report_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		comment.ID,
		comment.ReportID,
		comment.AuthorID,
		comment.Body,
		comment.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CommentRepo) ListByReport(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.Comment, error) {
	const op = "postgres.Comment.ListByReport"

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	const query = `
		SELECT id, report_id, author_id, body, created_at
		FROM comments
		WHERE report_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, reportID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0, limit)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ReportID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return comments, nil
}
