package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/database"
)

type timekeepingRepository struct {
	db *database.DB
}

func NewTimekeepingRepository(db *database.DB) timekeeping.Repository {
	return &timekeepingRepository{db: db}
}

const timekeepingColumns = `id, staff_id, shift_id, work_date, status, leave_type, check_in, check_out, note, created_at, updated_at`

func scanTimekeepingEntry(row pgx.Row) (timekeeping.Entry, error) {
	var e timekeeping.Entry
	var status string
	var leaveType *string
	err := row.Scan(
		&e.ID, &e.StaffID, &e.ShiftID, &e.Date, &status, &leaveType,
		&e.CheckIn, &e.CheckOut, &e.Note, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return timekeeping.Entry{}, err
	}
	e.Status = timekeeping.Status(status)
	if leaveType != nil {
		lt := timekeeping.LeaveType(*leaveType)
		e.LeaveType = &lt
	}
	return e, nil
}

func (r *timekeepingRepository) listWhere(ctx context.Context, where string, args ...interface{}) ([]timekeeping.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timekeepingColumns + ` FROM timekeeping_entries ` + where + ` ORDER BY work_date, staff_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timekeeping entries: %w", err)
	}
	defer rows.Close()

	var entries []timekeeping.Entry
	for rows.Next() {
		e, err := scanTimekeepingEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timekeeping entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *timekeepingRepository) ListRange(ctx context.Context, start, end time.Time) ([]timekeeping.Entry, error) {
	return r.listWhere(ctx, `WHERE work_date BETWEEN $1 AND $2`, start, end)
}

func (r *timekeepingRepository) ListStaffRange(ctx context.Context, staffID string, start, end time.Time) ([]timekeeping.Entry, error) {
	return r.listWhere(ctx, `WHERE staff_id = $1 AND work_date BETWEEN $2 AND $3`, staffID, start, end)
}

func (r *timekeepingRepository) GetByKey(ctx context.Context, staffID, shiftID string, date time.Time) (timekeeping.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timekeepingColumns + `
		FROM timekeeping_entries
		WHERE staff_id = $1 AND shift_id = $2 AND work_date = $3
	`

	e, err := scanTimekeepingEntry(q.QueryRow(ctx, query, staffID, shiftID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timekeeping.Entry{}, timekeeping.ErrEntryNotFound
		}
		return timekeeping.Entry{}, fmt.Errorf("failed to get timekeeping entry: %w", err)
	}

	return e, nil
}

func (r *timekeepingRepository) Upsert(ctx context.Context, entry timekeeping.Entry) (timekeeping.Entry, error) {
	q := GetQuerier(ctx, r.db)

	var leaveType *string
	if entry.LeaveType != nil {
		s := string(*entry.LeaveType)
		leaveType = &s
	}

	query := `
		INSERT INTO timekeeping_entries (id, staff_id, shift_id, work_date, status, leave_type, check_in, check_out, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (staff_id, shift_id, work_date) DO UPDATE SET
			status = EXCLUDED.status,
			leave_type = EXCLUDED.leave_type,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING ` + timekeepingColumns + `
	`

	e, err := scanTimekeepingEntry(q.QueryRow(ctx, query,
		entry.ID, entry.StaffID, entry.ShiftID, entry.Date,
		string(entry.Status), leaveType, entry.CheckIn, entry.CheckOut, entry.Note,
	))
	if err != nil {
		return timekeeping.Entry{}, fmt.Errorf("failed to upsert timekeeping entry: %w", err)
	}

	return e, nil
}

func (r *timekeepingRepository) BackfillNotChecked(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Every past assignment with no attendance record at all gets an explicit
	// not-checked entry so the schedule and the time sheet stay in step.
	query := `
		INSERT INTO timekeeping_entries (id, staff_id, shift_id, work_date, status)
		SELECT gen_random_uuid(), se.staff_id, se.shift_id, se.work_date, 'not-checked'
		FROM schedule_entries se
		WHERE se.work_date < $1
		  AND NOT EXISTS (
			SELECT 1 FROM timekeeping_entries te
			WHERE te.staff_id = se.staff_id
			  AND te.shift_id = se.shift_id
			  AND te.work_date = se.work_date
		  )
	`

	tag, err := q.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to backfill timekeeping entries: %w", err)
	}

	return tag.RowsAffected(), nil
}
