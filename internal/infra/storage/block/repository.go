package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/seuzara/barber-booking-service/internal/domain"
	"github.com/seuzara/barber-booking-service/pkg/dbmetrics"
	"github.com/seuzara/barber-booking-service/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"start_at",
	"end_at",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с блокировками расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, block *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocks").
		Columns("start_at", "end_at", "reason").
		Values(block.StartAt, block.EndAt, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// List получает все блокировки, отсортированные по началу интервала
func (r *Repository) List(ctx context.Context) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// ListOverlapping получает блокировки, пересекающие интервал [from, to)
// Используется фильтром доступности для выборки блокировок одного дня
func (r *Repository) ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocks").
		Where(squirrel.Gt{"end_at": from}).
		Where(squirrel.Lt{"start_at": to}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// Delete удаляет блокировку безусловно
// Блокировки - ограничение только на будущие запросы доступности,
// существующих бронирований удаление не касается
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func scanBlocks(rows *sql.Rows) ([]*domain.Block, error) {
	blocks := make([]*domain.Block, 0)

	for rows.Next() {
		var block domain.Block
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.StartAt,
			&block.EndAt,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
