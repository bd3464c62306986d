package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres при нарушении уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий шаблонов еженедельной доступности консультантов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись расписания.
// Уникальность тройки (consultant_id, slot_id, day_of_week) обеспечивается
// ограничением в БД; его нарушение возвращается как ErrDuplicateEntry.
func (r *Repository) Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("consultant_schedule").
		Columns(
			"consultant_id",
			"slot_id",
			"day_of_week",
		).
		Values(
			entry.ConsultantID,
			entry.SlotID,
			entry.DayOfWeek,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// Delete удаляет запись расписания по тройке (consultant_id, slot_id, day_of_week)
func (r *Repository) Delete(ctx context.Context, consultantID, slotID int64, day domain.DayOfWeek) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("consultant_schedule").
		Where(squirrel.Eq{
			"consultant_id": consultantID,
			"slot_id":       slotID,
			"day_of_week":   day,
		}).
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
		return ErrEntryNotFound
	}

	return nil
}

// DeleteByConsultant удаляет все записи расписания консультанта.
// Возвращает количество удалённых записей; операция идемпотентна (0 - не ошибка).
func (r *Repository) DeleteByConsultant(ctx context.Context, consultantID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("consultant_schedule").
		Where(squirrel.Eq{"consultant_id": consultantID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByConsultant - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByConsultant - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByConsultant - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// ListByConsultant получает записи расписания консультанта.
// Опционально фильтрует по дню недели.
func (r *Repository) ListByConsultant(ctx context.Context, consultantID int64, day *domain.DayOfWeek) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectEntries().
		Where(squirrel.Eq{"cs.consultant_id": consultantID})

	if day != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cs.day_of_week": *day})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByConsultant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByConsultant - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// ListByDayAndSlot получает записи расписания всех консультантов на день недели.
// Опционально сужает выборку до конкретного слота - обратный запрос
// "кто работает слот X в день Y".
func (r *Repository) ListByDayAndSlot(ctx context.Context, day domain.DayOfWeek, slotID *int64) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectEntries().
		Where(squirrel.Eq{"cs.day_of_week": day})

	if slotID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cs.slot_id": *slotID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDayAndSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDayAndSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// ListAll получает все записи расписаний всех консультантов
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectEntries().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// selectEntries базовый SELECT с сортировкой: консультант, ISO-номер дня, время слота.
// JOIN на slots нужен только ради стабильного временного порядка внутри дня.
func (r *Repository) selectEntries() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"cs.id",
		"cs.consultant_id",
		"cs.slot_id",
		"cs.day_of_week",
		"cs.created_at",
	).
		From("consultant_schedule cs").
		Join("slots s ON s.id = cs.slot_id").
		OrderBy(
			"cs.consultant_id ASC",
			dayOfWeekOrderExpr,
			"s.start_time ASC",
		)
}

// dayOfWeekOrderExpr сортировка дней недели в ISO-порядке (понедельник первый)
const dayOfWeekOrderExpr = `CASE cs.day_of_week
	WHEN 'monday' THEN 1
	WHEN 'tuesday' THEN 2
	WHEN 'wednesday' THEN 3
	WHEN 'thursday' THEN 4
	WHEN 'friday' THEN 5
	WHEN 'saturday' THEN 6
	WHEN 'sunday' THEN 7
END ASC`

// scanEntries сканирует результаты запроса в слайс записей расписания
func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.ScheduleEntry, error) {
	entries := make([]*domain.ScheduleEntry, 0)

	for rows.Next() {
		var entry domain.ScheduleEntry
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.ConsultantID,
			&entry.SlotID,
			&entry.DayOfWeek,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %w", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}

// isUniqueViolation распознаёт нарушение уникального ограничения Postgres
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
