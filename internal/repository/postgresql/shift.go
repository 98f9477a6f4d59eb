package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopvui/backoffice-go/internal/domain/shift"
	"github.com/shopvui/backoffice-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, is_active, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, is_active, created_at, updated_at
		FROM shifts
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY start_time`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}
