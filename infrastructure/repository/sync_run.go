package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vfg2006/wb-analytics-sync/infrastructure/database/postgres"
	"github.com/vfg2006/wb-analytics-sync/internal/domain"
)

const (
	syncRunsTable = "sync_runs sr"
)

type SyncRunRepository interface {
	Save(run *domain.SyncRun) error
	ListRecent(job string, limit int) ([]*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn *postgres.Connection
}

func NewSyncRunRepository(conn *postgres.Connection) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) Save(run *domain.SyncRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("sync_runs").
		Columns(
			"id", "job", "date_from", "date_to",
			"units", "succeeded", "empty", "failed", "rows_written",
			"started_at", "finished_at",
		).
		Values(
			run.ID,
			run.Job,
			run.DateFrom.Format("2006-01-02"),
			run.DateTo.Format("2006-01-02"),
			run.Units,
			run.Succeeded,
			run.Empty,
			run.Failed,
			run.RowsWritten,
			run.StartedAt,
			run.FinishedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *syncRunRepository) ListRecent(job string, limit int) ([]*domain.SyncRun, error) {
	builder := squirrel.
		Select("sr.id, sr.job, sr.date_from, sr.date_to, sr.units, sr.succeeded, sr.empty, sr.failed, sr.rows_written, sr.started_at, sr.finished_at").
		From(syncRunsTable).
		OrderBy("sr.started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if job != "" {
		builder = builder.Where(squirrel.Eq{"sr.job": job})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.SyncRun, 0)
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sync run: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *syncRunRepository) scanRun(rows *sql.Rows) (*domain.SyncRun, error) {
	run := &domain.SyncRun{}

	err := rows.Scan(
		&run.ID,
		&run.Job,
		&run.DateFrom,
		&run.DateTo,
		&run.Units,
		&run.Succeeded,
		&run.Empty,
		&run.Failed,
		&run.RowsWritten,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		return nil, err
	}

	return run, nil
}
