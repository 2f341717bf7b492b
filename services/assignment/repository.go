package assignmentservice

import (
	"context"
	"fmt"

	"inventaris/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type AssignmentRepository interface {
	AssetExists(ctx context.Context, tx *sqlx.Tx, assetID int64) (bool, error)
	EmployeeExists(ctx context.Context, tx *sqlx.Tx, userID int64) (bool, error)
	HasAssignment(ctx context.Context, tx *sqlx.Tx, assetID int64) (bool, error)
	InsertAssignment(ctx context.Context, tx *sqlx.Tx, req AssignmentReq, assignedBy int64) (int64, error)
	UpdateAssignment(ctx context.Context, assignmentID int64, req AssignmentReq) error
	DeleteAssignment(ctx context.Context, assignmentID int64) error
	ListAssignments(ctx context.Context, categories []string, limit, offset int) ([]AssignmentRes, int64, error)
}

type PostgresAssignmentRepository struct {
	DB *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) AssignmentRepository {
	return &PostgresAssignmentRepository{DB: db}
}

func (r *PostgresAssignmentRepository) AssetExists(ctx context.Context, tx *sqlx.Tx, assetID int64) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM assets WHERE id = $1 AND is_deleted = FALSE)
	`, assetID)
	if err != nil {
		return false, fmt.Errorf("failed to check asset: %w", err)
	}
	return exists, nil
}

func (r *PostgresAssignmentRepository) EmployeeExists(ctx context.Context, tx *sqlx.Tx, userID int64) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1 AND is_active = TRUE)
	`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check employee: %w", err)
	}
	return exists, nil
}

func (r *PostgresAssignmentRepository) HasAssignment(ctx context.Context, tx *sqlx.Tx, assetID int64) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM asset_assignments WHERE asset_id = $1)
	`, assetID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	return exists, nil
}

func (r *PostgresAssignmentRepository) InsertAssignment(ctx context.Context, tx *sqlx.Tx, req AssignmentReq, assignedBy int64) (int64, error) {
	var assignmentID int64
	err := tx.GetContext(ctx, &assignmentID, `
		INSERT INTO asset_assignments (
			asset_id, user_id, nomor_asset, catatan, assigned_by_user_id,
			tanggal_peminjaman, tanggal_pengembalian,
			kondisi_saat_peminjaman, kondisi_saat_pengembalian
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		req.AssetID, req.UserID, req.NomorAsset, req.Catatan, assignedBy,
		req.TanggalPeminjaman, req.TanggalPengembalian,
		req.KondisiSaatPeminjaman, req.KondisiSaatPengembalian)
	if err != nil {
		return 0, fmt.Errorf("failed to insert assignment: %w", err)
	}
	return assignmentID, nil
}

func (r *PostgresAssignmentRepository) UpdateAssignment(ctx context.Context, assignmentID int64, req AssignmentReq) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE asset_assignments
		SET user_id = $1, nomor_asset = $2, catatan = $3,
		    tanggal_peminjaman = $4, tanggal_pengembalian = $5,
		    kondisi_saat_peminjaman = $6, kondisi_saat_pengembalian = $7
		WHERE id = $8`,
		req.UserID, req.NomorAsset, req.Catatan,
		req.TanggalPeminjaman, req.TanggalPengembalian,
		req.KondisiSaatPeminjaman, req.KondisiSaatPengembalian, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("assignment", assignmentID)
	}
	return nil
}

func (r *PostgresAssignmentRepository) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM asset_assignments WHERE id = $1
	`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("assignment", assignmentID)
	}
	return nil
}

func (r *PostgresAssignmentRepository) ListAssignments(ctx context.Context, categories []string, limit, offset int) ([]AssignmentRes, int64, error) {
	var total int64
	err := r.DB.GetContext(ctx, &total, `
		SELECT count(*)
		FROM asset_assignments aa
		JOIN assets a ON a.id = aa.asset_id AND a.is_deleted = FALSE
		JOIN categories c ON c.id = a.category_id
		WHERE ($1::text[] IS NULL OR c.value = ANY($1))`,
		pq.Array(categories))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	assignments := make([]AssignmentRes, 0)
	err = r.DB.SelectContext(ctx, &assignments, `
		SELECT aa.id, aa.asset_id, a.nama_asset, c.value AS category_value,
		       aa.user_id, e.nama_lengkap, aa.nomor_asset, aa.catatan,
		       aa.assigned_by_user_id, aa.tanggal_peminjaman, aa.tanggal_pengembalian,
		       aa.kondisi_saat_peminjaman, aa.kondisi_saat_pengembalian
		FROM asset_assignments aa
		JOIN assets a ON a.id = aa.asset_id AND a.is_deleted = FALSE
		JOIN categories c ON c.id = a.category_id
		JOIN employees e ON e.id = aa.user_id
		WHERE ($1::text[] IS NULL OR c.value = ANY($1))
		ORDER BY aa.id
		LIMIT $2 OFFSET $3`,
		pq.Array(categories), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, total, nil
}
