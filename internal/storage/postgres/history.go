package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHistoryRepo(pool *pgxpool.Pool, logger *slog.Logger) *HistoryRepo {
	return &HistoryRepo{pool: pool, logger: logger}
}

const historyColumns = `id, report_id, user_id, previous_status, new_status, changed_at`

func (p *HistoryRepo) Get(ctx context.Context, id uuid.UUID) (*domain.StatusHistory, error) {
	const op = "postgres.History.Get"

	query := fmt.Sprintf(`SELECT %s FROM report_status_history WHERE id = $1`, historyColumns)

	var h domain.StatusHistory
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&h.ID,
		&h.ReportID,
		&h.UserID,
		&h.PreviousStatus,
		&h.NewStatus,
		&h.ChangedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &h, nil
}

// List returns transition records matching the filter, newest first, with the
// total over the same predicate. Zero-value filter fields are skipped.
func (p *HistoryRepo) List(ctx context.Context, filter domain.HistoryFilter, page, limit int) ([]domain.StatusHistory, int64, error) {
	const op = "postgres.History.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	where, args := buildHistoryWhere(filter)

	countQuery := `SELECT COUNT(*) FROM report_status_history` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM report_status_history%s ORDER BY changed_at DESC LIMIT $%d OFFSET $%d`,
		historyColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	items := make([]domain.StatusHistory, 0, limit)
	for rows.Next() {
		var h domain.StatusHistory
		if err := rows.Scan(
			&h.ID,
			&h.ReportID,
			&h.UserID,
			&h.PreviousStatus,
			&h.NewStatus,
			&h.ChangedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return items, total, nil
}

func (p *HistoryRepo) CountByReport(ctx context.Context, reportID uuid.UUID) (int64, error) {
	const op = "postgres.History.CountByReport"

	const query = `SELECT COUNT(*) FROM report_status_history WHERE report_id = $1`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, reportID).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("report_id", reportID.String()))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

func buildHistoryWhere(filter domain.HistoryFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.ReportID != uuid.Nil {
		add("report_id = $%d", filter.ReportID)
	}
	if filter.UserID != uuid.Nil {
		add("user_id = $%d", filter.UserID)
	}
	if filter.PreviousStatus != "" {
		add("previous_status = $%d", filter.PreviousStatus)
	}
	if filter.NewStatus != "" {
		add("new_status = $%d", filter.NewStatus)
	}
	if !filter.From.IsZero() {
		add("changed_at >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		add("changed_at <= $%d", filter.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
