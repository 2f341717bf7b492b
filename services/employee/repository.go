package employeeservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris/models"

	"github.com/jmoiron/sqlx"
)

type employeeCredentials struct {
	EmployeeRes
	PasswordHash string `db:"password_hash"`
}

type EmployeeRepository interface {
	InsertEmployee(ctx context.Context, req EmployeeReq, passwordHash string) (int64, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req EmployeeReq) error
	DeactivateEmployee(ctx context.Context, employeeID int64) error
	GetEmployeeByID(ctx context.Context, employeeID int64) (*EmployeeRes, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*employeeCredentials, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	SearchEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeRes, int64, error)
}

type PostgresEmployeeRepository struct {
	DB *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) EmployeeRepository {
	return &PostgresEmployeeRepository{DB: db}
}

func (r *PostgresEmployeeRepository) InsertEmployee(ctx context.Context, req EmployeeReq, passwordHash string) (int64, error) {
	var employeeID int64
	err := r.DB.GetContext(ctx, &employeeID, `
		INSERT INTO employees (nama_lengkap, email, password_hash, departemen, jabatan, lokasi_kantor, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		req.NamaLengkap, req.Email, passwordHash, req.Departemen, req.Jabatan, req.LokasiKantor, req.Role)
	if err != nil {
		return 0, fmt.Errorf("failed to insert employee: %w", err)
	}
	return employeeID, nil
}

func (r *PostgresEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID int64, req EmployeeReq) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE employees
		SET nama_lengkap = $1, email = $2, departemen = $3, jabatan = $4, lokasi_kantor = $5, role = $6
		WHERE id = $7`,
		req.NamaLengkap, req.Email, req.Departemen, req.Jabatan, req.LokasiKantor, req.Role, employeeID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("employee", employeeID)
	}
	return nil
}

// DeactivateEmployee flips is_active off; employee rows are never removed so
// assignment and billing history keeps resolving names.
func (r *PostgresEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID int64) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE employees SET is_active = FALSE WHERE id = $1
	`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("employee", employeeID)
	}
	return nil
}

func (r *PostgresEmployeeRepository) GetEmployeeByID(ctx context.Context, employeeID int64) (*EmployeeRes, error) {
	var employee EmployeeRes
	err := r.DB.GetContext(ctx, &employee, `
		SELECT id, nama_lengkap, email, departemen, jabatan, lokasi_kantor, is_active, role
		FROM employees WHERE id = $1
	`, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("employee", employeeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return &employee, nil
}

func (r *PostgresEmployeeRepository) GetCredentialsByEmail(ctx context.Context, email string) (*employeeCredentials, error) {
	var creds employeeCredentials
	err := r.DB.GetContext(ctx, &creds, `
		SELECT id, nama_lengkap, email, password_hash, departemen, jabatan, lokasi_kantor, is_active, role
		FROM employees WHERE email = $1
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credentials: %w", err)
	}
	return &creds, nil
}

func (r *PostgresEmployeeRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	err := r.DB.GetContext(ctx, &taken, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND id <> $2)
	`, email, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return taken, nil
}

func (r *PostgresEmployeeRepository) SearchEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeRes, int64, error) {
	var total int64
	err := r.DB.GetContext(ctx, &total, `
		SELECT count(*) FROM employees
		WHERE ($1 = '' OR nama_lengkap ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		       OR departemen ILIKE '%' || $1 || '%')`,
		filter.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	employees := make([]EmployeeRes, 0)
	err = r.DB.SelectContext(ctx, &employees, `
		SELECT id, nama_lengkap, email, departemen, jabatan, lokasi_kantor, is_active, role
		FROM employees
		WHERE ($1 = '' OR nama_lengkap ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		       OR departemen ILIKE '%' || $1 || '%')
		ORDER BY nama_lengkap
		LIMIT $2 OFFSET $3`,
		filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search employees: %w", err)
	}
	return employees, total, nil
}
