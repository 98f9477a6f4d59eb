package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
	"github.com/shopvui/backoffice-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

func scanSalarySettings(raw []byte) (*staff.SalarySettings, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var settings staff.SalarySettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode salary settings: %w", err)
	}
	return &settings, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position, salary_settings, is_active, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var s staff.Staff
	var rawSettings []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.FullName, &s.Position, &rawSettings, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	s.SalarySettings, err = scanSalarySettings(rawSettings)
	if err != nil {
		return staff.Staff{}, err
	}

	return s, nil
}

func (r *staffRepository) List(ctx context.Context, activeOnly bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position, salary_settings, is_active, created_at, updated_at
		FROM staff
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var s staff.Staff
		var rawSettings []byte
		if err := rows.Scan(
			&s.ID, &s.FullName, &s.Position, &rawSettings, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		s.SalarySettings, err = scanSalarySettings(rawSettings)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}

	return members, rows.Err()
}
