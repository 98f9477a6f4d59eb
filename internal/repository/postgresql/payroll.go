package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/shopvui/backoffice-go/internal/domain/payroll"
	"github.com/shopvui/backoffice-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

// ========== PAYROLLS ==========

func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll, slips []payroll.Payslip) (payroll.Payroll, error) {
	var created payroll.Payroll

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO payrolls (id, code, name, period_start, period_end, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, code, name, period_start, period_end, status, created_at, updated_at
		`

		var status string
		err := q.QueryRow(txCtx, query,
			p.ID, p.Code, p.Name, p.PeriodStart, p.PeriodEnd, string(p.Status),
		).Scan(
			&created.ID, &created.Code, &created.Name, &created.PeriodStart,
			&created.PeriodEnd, &status, &created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			if strings.Contains(err.Error(), "uk_payroll_code") {
				return payroll.ErrPayrollAlreadyExists
			}
			return fmt.Errorf("failed to create payroll: %w", err)
		}
		created.Status = payroll.Status(status)

		slipQuery := `
			INSERT INTO payslips (id, payroll_id, staff_id, base_salary, bonus, penalty, paid_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for _, slip := range slips {
			if _, err := q.Exec(txCtx, slipQuery,
				slip.ID, slip.PayrollID, slip.StaffID,
				slip.BaseSalary, slip.Bonus, slip.Penalty, slip.PaidAmount,
			); err != nil {
				return fmt.Errorf("failed to create payslip: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return payroll.Payroll{}, err
	}

	return created, nil
}

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	var status string
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.PeriodStart, &p.PeriodEnd,
		&status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}
	p.Status = payroll.Status(status)
	return p, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, period_start, period_end, status, created_at, updated_at
		FROM payrolls
		WHERE id = $1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByPeriod(ctx context.Context, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, period_start, period_end, status, created_at, updated_at
		FROM payrolls
		WHERE code = $1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, fmt.Sprintf("PR-%d-%02d", year, month)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.Month != nil && filter.Year != nil {
		args = append(args, fmt.Sprintf("PR-%d-%02d", *filter.Year, *filter.Month))
		conditions = append(conditions, fmt.Sprintf("code = $%d", len(args)))
	} else if filter.Year != nil {
		args = append(args, fmt.Sprintf("PR-%d-%%", *filter.Year))
		conditions = append(conditions, fmt.Sprintf("code LIKE $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payrolls` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT id, code, name, period_start, period_end, status, created_at, updated_at
		FROM payrolls%s
		ORDER BY period_start DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, totalCount, rows.Err()
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payrolls SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx,
			`DELETE FROM payments WHERE payslip_id IN (SELECT id FROM payslips WHERE payroll_id = $1)`, id,
		); err != nil {
			return fmt.Errorf("failed to delete payments: %w", err)
		}
		if _, err := q.Exec(txCtx, `DELETE FROM payslips WHERE payroll_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete payslips: %w", err)
		}

		tag, err := q.Exec(txCtx, `DELETE FROM payrolls WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete payroll: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return payroll.ErrPayrollNotFound
		}

		return nil
	})
}

// ========== PAYSLIPS ==========

const payslipColumns = `
	ps.id, ps.payroll_id, ps.staff_id, ps.base_salary, ps.bonus, ps.penalty,
	ps.paid_amount, ps.created_at, ps.updated_at, st.full_name, st.position
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var s payroll.Payslip
	err := row.Scan(
		&s.ID, &s.PayrollID, &s.StaffID, &s.BaseSalary, &s.Bonus, &s.Penalty,
		&s.PaidAmount, &s.CreatedAt, &s.UpdatedAt, &s.StaffName, &s.Position,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}
	return s, nil
}

func (r *payrollRepository) ListPayslips(ctx context.Context, payrollID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips ps
		LEFT JOIN staff st ON st.id = ps.staff_id
		WHERE ps.payroll_id = $1
		ORDER BY st.full_name
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		s, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, s)
	}

	return slips, rows.Err()
}

func (r *payrollRepository) GetPayslip(ctx context.Context, payrollID, staffID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips ps
		LEFT JOIN staff st ON st.id = ps.staff_id
		WHERE ps.payroll_id = $1 AND ps.staff_id = $2
	`

	s, err := scanPayslip(q.QueryRow(ctx, query, payrollID, staffID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpdatePayslipAmounts(ctx context.Context, payslipID string, bonus, penalty decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payslips SET bonus = $1, penalty = $2, updated_at = NOW() WHERE id = $3`,
		bonus, penalty, payslipID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payslip amounts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

func (r *payrollRepository) ReloadBaseSalaries(ctx context.Context, payrollID string, amounts map[string]decimal.Decimal) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE payslips SET base_salary = $1, updated_at = NOW()
			WHERE payroll_id = $2 AND staff_id = $3
		`
		for staffID, amount := range amounts {
			if _, err := q.Exec(txCtx, query, amount, payrollID, staffID); err != nil {
				return fmt.Errorf("failed to reload base salary for staff %s: %w", staffID, err)
			}
		}

		return nil
	})
}

// ========== PAYMENTS ==========

func (r *payrollRepository) CreatePayment(ctx context.Context, payment payroll.Payment) (payroll.Payment, error) {
	var created payroll.Payment

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO payments (id, payslip_id, amount, method, bank_name, bank_account, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, payslip_id, amount, method, bank_name, bank_account, note, created_at
		`

		var method string
		err := q.QueryRow(txCtx, query,
			payment.ID, payment.PayslipID, payment.Amount, string(payment.Method),
			payment.BankName, payment.BankAccount, payment.Note,
		).Scan(
			&created.ID, &created.PayslipID, &created.Amount, &method,
			&created.BankName, &created.BankAccount, &created.Note, &created.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		created.Method = payroll.PaymentMethod(method)

		tag, err := q.Exec(txCtx,
			`UPDATE payslips SET paid_amount = paid_amount + $1, updated_at = NOW() WHERE id = $2`,
			payment.Amount, payment.PayslipID,
		)
		if err != nil {
			return fmt.Errorf("failed to update paid amount: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return payroll.ErrPayslipNotFound
		}

		return nil
	})
	if err != nil {
		return payroll.Payment{}, err
	}

	return created, nil
}

func (r *payrollRepository) ListPayments(ctx context.Context, payslipID string) ([]payroll.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payslip_id, amount, method, bank_name, bank_account, note, created_at
		FROM payments
		WHERE payslip_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payroll.Payment
	for rows.Next() {
		var p payroll.Payment
		var method string
		if err := rows.Scan(
			&p.ID, &p.PayslipID, &p.Amount, &method,
			&p.BankName, &p.BankAccount, &p.Note, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Method = payroll.PaymentMethod(method)
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
