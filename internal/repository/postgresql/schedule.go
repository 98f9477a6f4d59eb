package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopvui/backoffice-go/internal/domain/schedule"
	"github.com/shopvui/backoffice-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) List(ctx context.Context, staffID *string, start, end time.Time) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, shift_id, work_date, created_at
		FROM schedule_entries
		WHERE work_date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}
	if staffID != nil {
		query += ` AND staff_id = $3`
		args = append(args, *staffID)
	}
	query += ` ORDER BY work_date, staff_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(&e.ID, &e.StaffID, &e.ShiftID, &e.WorkDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *scheduleRepository) GetByKey(ctx context.Context, staffID, shiftID string, date time.Time) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, shift_id, work_date, created_at
		FROM schedule_entries
		WHERE staff_id = $1 AND shift_id = $2 AND work_date = $3
	`

	var e schedule.Entry
	err := q.QueryRow(ctx, query, staffID, shiftID, date).Scan(
		&e.ID, &e.StaffID, &e.ShiftID, &e.WorkDate, &e.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Entry{}, schedule.ErrAssignmentNotFound
		}
		return schedule.Entry{}, fmt.Errorf("failed to get schedule entry: %w", err)
	}

	return e, nil
}

func (r *scheduleRepository) Upsert(ctx context.Context, entry schedule.Entry) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	// ON CONFLICT DO UPDATE with an unchanged column so RETURNING always
	// yields the row, existing or new.
	query := `
		INSERT INTO schedule_entries (id, staff_id, shift_id, work_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id, shift_id, work_date) DO UPDATE SET staff_id = EXCLUDED.staff_id
		RETURNING id, staff_id, shift_id, work_date, created_at
	`

	var e schedule.Entry
	err := q.QueryRow(ctx, query, entry.ID, entry.StaffID, entry.ShiftID, entry.WorkDate).Scan(
		&e.ID, &e.StaffID, &e.ShiftID, &e.WorkDate, &e.CreatedAt,
	)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to upsert schedule entry: %w", err)
	}

	return e, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}

	return nil
}

func (r *scheduleRepository) Swap(ctx context.Context, from, to schedule.AssignmentRef) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		// Lock both rows. The service already validated against a snapshot;
		// everything is re-checked here under the locks.
		fromEntry, err := lockAssignment(txCtx, q, from)
		if err != nil {
			return err
		}
		toEntry, err := lockAssignment(txCtx, q, to)
		if err != nil {
			return err
		}
		if fromEntry.ID == toEntry.ID {
			return schedule.ErrSwapSameAssignment
		}

		for _, side := range []schedule.AssignmentRef{from, to} {
			recorded, err := hasRecordedAttendance(txCtx, q, side)
			if err != nil {
				return err
			}
			if recorded {
				return fmt.Errorf("%w: staff %s, shift %s", schedule.ErrAlreadyCheckedIn, side.StaffID, side.ShiftID)
			}
		}

		// The resulting assignments must not collide with existing rows other
		// than the two being exchanged.
		duplicateQuery := `
			SELECT EXISTS (
				SELECT 1 FROM schedule_entries
				WHERE staff_id = $1 AND shift_id = $2 AND work_date = $3 AND id NOT IN ($4, $5)
			)
		`
		for _, pair := range [][2]schedule.AssignmentRef{{from, to}, {to, from}} {
			var exists bool
			err := q.QueryRow(txCtx, duplicateQuery,
				pair[0].StaffID, pair[1].ShiftID, pair[0].WorkDate, fromEntry.ID, toEntry.ID,
			).Scan(&exists)
			if err != nil {
				return fmt.Errorf("failed to check for duplicate assignment: %w", err)
			}
			if exists {
				return fmt.Errorf("%w: staff %s, shift %s", schedule.ErrDuplicateAssignment, pair[0].StaffID, pair[1].ShiftID)
			}
		}

		// Exchange the shifts by delete-and-reinsert. Updating in place can
		// trip the (staff, shift, date) unique index mid-swap when both sides
		// belong to the same staff and date.
		if err := swapScheduleRows(txCtx, q, fromEntry, toEntry); err != nil {
			return err
		}
		return swapTimekeepingRows(txCtx, q, from, to)
	})
}

func lockAssignment(ctx context.Context, q database.Querier, ref schedule.AssignmentRef) (schedule.Entry, error) {
	query := `
		SELECT id, staff_id, shift_id, work_date, created_at
		FROM schedule_entries
		WHERE staff_id = $1 AND shift_id = $2 AND work_date = $3
		FOR UPDATE
	`

	var e schedule.Entry
	err := q.QueryRow(ctx, query, ref.StaffID, ref.ShiftID, ref.WorkDate).Scan(
		&e.ID, &e.StaffID, &e.ShiftID, &e.WorkDate, &e.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Entry{}, fmt.Errorf("%w: staff %s, shift %s", schedule.ErrNotScheduled, ref.StaffID, ref.ShiftID)
		}
		return schedule.Entry{}, fmt.Errorf("failed to lock schedule entry: %w", err)
	}

	return e, nil
}

func hasRecordedAttendance(ctx context.Context, q database.Querier, ref schedule.AssignmentRef) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM timekeeping_entries
			WHERE staff_id = $1 AND shift_id = $2 AND work_date = $3
			  AND status NOT IN ('not-checked', 'missing')
		)
	`

	var recorded bool
	err := q.QueryRow(ctx, query, ref.StaffID, ref.ShiftID, ref.WorkDate).Scan(&recorded)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}

	return recorded, nil
}

func swapScheduleRows(ctx context.Context, q database.Querier, fromEntry, toEntry schedule.Entry) error {
	if _, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE id IN ($1, $2)`, fromEntry.ID, toEntry.ID); err != nil {
		return fmt.Errorf("failed to remove swapped schedule entries: %w", err)
	}

	insertQuery := `
		INSERT INTO schedule_entries (id, staff_id, shift_id, work_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := q.Exec(ctx, insertQuery,
		fromEntry.ID, fromEntry.StaffID, toEntry.ShiftID, fromEntry.WorkDate, fromEntry.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to reinsert schedule entry: %w", err)
	}
	if _, err := q.Exec(ctx, insertQuery,
		toEntry.ID, toEntry.StaffID, fromEntry.ShiftID, toEntry.WorkDate, toEntry.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to reinsert schedule entry: %w", err)
	}

	return nil
}

// swapTimekeepingRows carries unrecorded attendance rows along with their
// assignments. Same delete-and-reinsert dance as the schedule rows.
func swapTimekeepingRows(ctx context.Context, q database.Querier, from, to schedule.AssignmentRef) error {
	selectQuery := `
		SELECT id, staff_id, shift_id, work_date, status, leave_type, check_in, check_out, note, created_at
		FROM timekeeping_entries
		WHERE (staff_id = $1 AND shift_id = $2 AND work_date = $3)
		   OR (staff_id = $4 AND shift_id = $5 AND work_date = $6)
		FOR UPDATE
	`

	rows, err := q.Query(ctx, selectQuery,
		from.StaffID, from.ShiftID, from.WorkDate,
		to.StaffID, to.ShiftID, to.WorkDate,
	)
	if err != nil {
		return fmt.Errorf("failed to load timekeeping entries: %w", err)
	}

	type tkRow struct {
		id, staffID, shiftID               string
		workDate, createdAt                time.Time
		status                             string
		leaveType, checkIn, checkOut, note *string
	}

	var moved []tkRow
	for rows.Next() {
		var t tkRow
		if err := rows.Scan(&t.id, &t.staffID, &t.shiftID, &t.workDate, &t.status,
			&t.leaveType, &t.checkIn, &t.checkOut, &t.note, &t.createdAt); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan timekeeping entry: %w", err)
		}
		moved = append(moved, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load timekeeping entries: %w", err)
	}
	if len(moved) == 0 {
		return nil
	}

	for _, t := range moved {
		if _, err := q.Exec(ctx, `DELETE FROM timekeeping_entries WHERE id = $1`, t.id); err != nil {
			return fmt.Errorf("failed to remove timekeeping entry: %w", err)
		}
	}

	insertQuery := `
		INSERT INTO timekeeping_entries (id, staff_id, shift_id, work_date, status, leave_type, check_in, check_out, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	for _, t := range moved {
		newShiftID := t.shiftID
		switch {
		case t.staffID == from.StaffID && t.shiftID == from.ShiftID && sameDay(t.workDate, from.WorkDate):
			newShiftID = to.ShiftID
		case t.staffID == to.StaffID && t.shiftID == to.ShiftID && sameDay(t.workDate, to.WorkDate):
			newShiftID = from.ShiftID
		}
		if _, err := q.Exec(ctx, insertQuery,
			t.id, t.staffID, newShiftID, t.workDate, t.status,
			t.leaveType, t.checkIn, t.checkOut, t.note, t.createdAt,
		); err != nil {
			return fmt.Errorf("failed to reinsert timekeeping entry: %w", err)
		}
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
