package phoneservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris/models"

	"github.com/jmoiron/sqlx"
)

type PhoneRepository interface {
	EmployeeExists(ctx context.Context, userID int64) (bool, error)
	FindCallOutgoingIDByValue(ctx context.Context, value string) (*int64, error)
	CallOutgoingExists(ctx context.Context, id int64) (bool, error)

	GetPhoneAccountByUserID(ctx context.Context, userID int64) (*PhoneAccountRes, error)
	InsertPhoneAccount(ctx context.Context, req PhoneAccountReq) (int64, error)
	UpdatePhoneAccount(ctx context.Context, accountID int64, req PhoneAccountReq) error
	DeletePhoneAccount(ctx context.Context, accountID int64) error
	ListPhoneAccounts(ctx context.Context) ([]PhoneAccountRes, error)

	InsertBillingRecord(ctx context.Context, req BillingRecordReq, extension *int, cost int64) (int64, error)
	DeleteBillingRecord(ctx context.Context, recordID int64) error
	ListBillingRecords(ctx context.Context, userID int64, limit, offset int) ([]BillingRecordRes, int64, error)
}

type PostgresPhoneRepository struct {
	DB *sqlx.DB
}

func NewPhoneRepository(db *sqlx.DB) PhoneRepository {
	return &PostgresPhoneRepository{DB: db}
}

func (r *PostgresPhoneRepository) EmployeeExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1 AND is_active = TRUE)
	`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check employee: %w", err)
	}
	return exists, nil
}

func (r *PostgresPhoneRepository) FindCallOutgoingIDByValue(ctx context.Context, value string) (*int64, error) {
	var id int64
	err := r.DB.GetContext(ctx, &id, `
		SELECT id FROM call_outgoing_options WHERE value = $1 AND is_deleted = FALSE ORDER BY id LIMIT 1
	`, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up call outgoing rate: %w", err)
	}
	return &id, nil
}

func (r *PostgresPhoneRepository) CallOutgoingExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM call_outgoing_options WHERE id = $1)
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check call outgoing rate: %w", err)
	}
	return exists, nil
}

func (r *PostgresPhoneRepository) GetPhoneAccountByUserID(ctx context.Context, userID int64) (*PhoneAccountRes, error) {
	var account PhoneAccountRes
	err := r.DB.GetContext(ctx, &account, `
		SELECT pa.id, pa.user_id, e.nama_lengkap, pa.extension, pa.account,
		       pa.code_dial, pa.deposit, pa.call_outgoing_id, co.value AS call_outgoing_value
		FROM phone_accounts pa
		JOIN employees e ON e.id = pa.user_id
		LEFT JOIN call_outgoing_options co ON co.id = pa.call_outgoing_id
		WHERE pa.user_id = $1
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch phone account: %w", err)
	}
	return &account, nil
}

func (r *PostgresPhoneRepository) InsertPhoneAccount(ctx context.Context, req PhoneAccountReq) (int64, error) {
	var accountID int64
	err := r.DB.GetContext(ctx, &accountID, `
		INSERT INTO phone_accounts (user_id, extension, account, code_dial, deposit, call_outgoing_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		req.UserID, req.Extension, req.Account, req.CodeDial, req.Deposit, req.CallOutgoingID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert phone account: %w", err)
	}
	return accountID, nil
}

func (r *PostgresPhoneRepository) UpdatePhoneAccount(ctx context.Context, accountID int64, req PhoneAccountReq) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE phone_accounts
		SET extension = $1, account = $2, code_dial = $3, deposit = $4, call_outgoing_id = $5
		WHERE id = $6`,
		req.Extension, req.Account, req.CodeDial, req.Deposit, req.CallOutgoingID, accountID)
	if err != nil {
		return fmt.Errorf("failed to update phone account: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("phone account", accountID)
	}
	return nil
}

func (r *PostgresPhoneRepository) DeletePhoneAccount(ctx context.Context, accountID int64) error {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM phone_accounts WHERE id = $1
	`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete phone account: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("phone account", accountID)
	}
	return nil
}

func (r *PostgresPhoneRepository) ListPhoneAccounts(ctx context.Context) ([]PhoneAccountRes, error) {
	accounts := make([]PhoneAccountRes, 0)
	err := r.DB.SelectContext(ctx, &accounts, `
		SELECT pa.id, pa.user_id, e.nama_lengkap, pa.extension, pa.account,
		       pa.code_dial, pa.deposit, pa.call_outgoing_id, co.value AS call_outgoing_value
		FROM phone_accounts pa
		JOIN employees e ON e.id = pa.user_id
		LEFT JOIN call_outgoing_options co ON co.id = pa.call_outgoing_id
		ORDER BY pa.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list phone accounts: %w", err)
	}
	return accounts, nil
}

func (r *PostgresPhoneRepository) InsertBillingRecord(ctx context.Context, req BillingRecordReq, extension *int, cost int64) (int64, error) {
	var recordID int64
	err := r.DB.GetContext(ctx, &recordID, `
		INSERT INTO billing_records (call_date, user_id, extension, dial, duration, trunk, pstn, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		req.CallDate, req.UserID, extension, req.Dial, req.Duration, req.Trunk, req.Pstn, cost)
	if err != nil {
		return 0, fmt.Errorf("failed to insert billing record: %w", err)
	}
	return recordID, nil
}

func (r *PostgresPhoneRepository) DeleteBillingRecord(ctx context.Context, recordID int64) error {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM billing_records WHERE id = $1
	`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete billing record: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("billing record", recordID)
	}
	return nil
}

func (r *PostgresPhoneRepository) ListBillingRecords(ctx context.Context, userID int64, limit, offset int) ([]BillingRecordRes, int64, error) {
	var total int64
	err := r.DB.GetContext(ctx, &total, `
		SELECT count(*) FROM billing_records
		WHERE ($1::bigint = 0 OR user_id = $1)`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count billing records: %w", err)
	}

	records := make([]BillingRecordRes, 0)
	err = r.DB.SelectContext(ctx, &records, `
		SELECT br.id, br.call_date, br.user_id, e.nama_lengkap, br.extension,
		       br.dial, br.duration, br.trunk, br.pstn, br.cost
		FROM billing_records br
		JOIN employees e ON e.id = br.user_id
		WHERE ($1::bigint = 0 OR br.user_id = $1)
		ORDER BY br.call_date DESC, br.id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list billing records: %w", err)
	}
	return records, total, nil
}
