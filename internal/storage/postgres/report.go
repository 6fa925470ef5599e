package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `id, title, description, categories,
	ST_Y(geo::geometry) AS lat,
	ST_X(geo::geometry) AS lng,
	status, important_votes, liked_user_ids, owner_id, created_at`

func scanReport(row pgx.Row) (*domain.Report, error) {
	var r domain.Report
	err := row.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.Categories,
		&r.Lat,
		&r.Lng,
		&r.Status,
		&r.ImportantVotes,
		&r.LikedUserIDs,
		&r.OwnerID,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *ReportRepo) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO reports (id, title, description, categories, geo, status, important_votes, liked_user_ids, owner_id, created_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, 0, '{}', $8, $9)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	if report.Status == "" {
		report.Status = domain.ReportPending
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Title,
		report.Description,
		report.Categories,
		report.Lng,
		report.Lat,
		report.Status,
		report.OwnerID,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// Get returns the report in any status, soft-deleted included. Visibility
// rules live in the service layer.
func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	query := fmt.Sprintf(`SELECT %s FROM reports WHERE id = $1`, reportColumns)

	report, err := scanReport(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return report, nil
}

// ExistsByContent is the advisory duplicate guard: an exact title+description
// match against any non-deleted report.
func (p *ReportRepo) ExistsByContent(ctx context.Context, title, description string) (bool, error) {
	const op = "postgres.Report.ExistsByContent"

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reports
			WHERE title = $1 AND description = $2 AND status <> 'DELETED'
		)
	`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, title, description).Scan(&exists); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return exists, nil
}

// UpdateContent mutates title, description and categories only. Status,
// votes and ownership are untouched; deleted reports are not updatable.
func (p *ReportRepo) UpdateContent(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.UpdateContent"

	const query = `
		UPDATE reports
		SET title = $2, description = $3, categories = $4
		WHERE id = $1 AND status <> 'DELETED'
	`

	cmd, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Title,
		report.Description,
		report.Categories,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", report.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// ChangeStatus writes the new status conditionally on the previously observed
// one and appends the audit row in the same transaction. A concurrent change
// that moved the status away surfaces as ErrConflict so the caller can
// re-read and re-validate.
func (p *ReportRepo) ChangeStatus(ctx context.Context, id uuid.UUID, prev, next domain.ReportStatus, actorID uuid.UUID) (*domain.StatusHistory, error) {
	const op = "postgres.Report.ChangeStatus"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("db begin failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const updateQuery = `
		UPDATE reports SET status = $3
		WHERE id = $1 AND status = $2
	`

	cmd, err := tx.Exec(ctx, updateQuery, id, prev, next)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	hist := &domain.StatusHistory{
		ID:             uuid.New(),
		ReportID:       id,
		UserID:         actorID,
		PreviousStatus: prev,
		NewStatus:      next,
		ChangedAt:      time.Now().UTC(),
	}

	const historyQuery = `
		INSERT INTO report_status_history (id, report_id, user_id, previous_status, new_status, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := tx.Exec(ctx, historyQuery,
		hist.ID,
		hist.ReportID,
		hist.UserID,
		hist.PreviousStatus,
		hist.NewStatus,
		hist.ChangedAt,
	); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("db commit failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return hist, nil
}

// ToggleVote flips actorID's vote in one statement. Both CASE expressions see
// the pre-update row, so the membership test and the counter stay consistent
// under concurrent toggles.
func (p *ReportRepo) ToggleVote(ctx context.Context, id, userID uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.ToggleVote"

	query := fmt.Sprintf(`
		UPDATE reports SET
			liked_user_ids = CASE WHEN $2 = ANY(liked_user_ids)
				THEN array_remove(liked_user_ids, $2)
				ELSE array_append(liked_user_ids, $2) END,
			important_votes = CASE WHEN $2 = ANY(liked_user_ids)
				THEN important_votes - 1
				ELSE important_votes + 1 END
		WHERE id = $1 AND status <> 'DELETED'
		RETURNING %s`, reportColumns)

	report, err := scanReport(p.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return report, nil
}

// FindNearby returns VERIFIED reports within radiusM meters of the center,
// nearest first, with the total count over the same predicate. A nil or empty
// categories slice means no category filter.
func (p *ReportRepo) FindNearby(ctx context.Context, lat, lng, radiusM float64, categories []string, limit, offset int) ([]domain.NearbyReport, int64, error) {
	const op = "postgres.Report.FindNearby"

	var filter []string
	if len(categories) > 0 {
		filter = categories
	}

	const predicate = `
		status = 'VERIFIED'
		AND ST_DWithin(
			geo::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		AND ($4::text[] IS NULL OR EXISTS (
			SELECT 1 FROM jsonb_array_elements(categories) c
			WHERE c->>'name' = ANY($4)
		))`

	countQuery := `SELECT COUNT(*) FROM reports WHERE ` + predicate

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, lng, lat, radiusM, filter).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s,
			ST_Distance(
				geo::geography,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
			) AS distance_m
		FROM reports
		WHERE %s
		ORDER BY distance_m ASC
		LIMIT $5 OFFSET $6`, reportColumns, predicate)

	rows, err := p.pool.Query(ctx, listQuery, lng, lat, radiusM, filter, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	items := make([]domain.NearbyReport, 0, limit)
	for rows.Next() {
		var nr domain.NearbyReport
		if err := rows.Scan(
			&nr.ID,
			&nr.Title,
			&nr.Description,
			&nr.Categories,
			&nr.Lat,
			&nr.Lng,
			&nr.Status,
			&nr.ImportantVotes,
			&nr.LikedUserIDs,
			&nr.OwnerID,
			&nr.CreatedAt,
			&nr.DistanceM,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		items = append(items, nr)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return items, total, nil
}
