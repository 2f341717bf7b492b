package catalogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris/models"

	"github.com/jmoiron/sqlx"
)

type CatalogRepository interface {
	ListOptions(ctx context.Context, table string) ([]Option, error)
	InsertOption(ctx context.Context, table, value string) (int64, error)
	UpdateOption(ctx context.Context, table string, id int64, value string) error
	SoftDeleteOption(ctx context.Context, table string, id int64) error
	GetOptionByValue(ctx context.Context, table, value string) (*Option, error)
}

type PostgresCatalogRepository struct {
	DB *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) CatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

func (r *PostgresCatalogRepository) ListOptions(ctx context.Context, table string) ([]Option, error) {
	options := make([]Option, 0)
	query := fmt.Sprintf(`SELECT id, value, is_deleted FROM %s ORDER BY id`, table)
	if err := r.DB.SelectContext(ctx, &options, query); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return options, nil
}

func (r *PostgresCatalogRepository) InsertOption(ctx context.Context, table, value string) (int64, error) {
	var id int64
	query := fmt.Sprintf(`INSERT INTO %s (value) VALUES ($1) RETURNING id`, table)
	if err := r.DB.GetContext(ctx, &id, query, value); err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}

func (r *PostgresCatalogRepository) UpdateOption(ctx context.Context, table string, id int64, value string) error {
	query := fmt.Sprintf(`UPDATE %s SET value = $1 WHERE id = $2 AND is_deleted = FALSE`, table)
	result, err := r.DB.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("option", id)
	}
	return nil
}

// SoftDeleteOption only flags the row; referenced options stay resolvable for
// historical records.
func (r *PostgresCatalogRepository) SoftDeleteOption(ctx context.Context, table string, id int64) error {
	query := fmt.Sprintf(`UPDATE %s SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`, table)
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("option", id)
	}
	return nil
}

func (r *PostgresCatalogRepository) GetOptionByValue(ctx context.Context, table, value string) (*Option, error) {
	var option Option
	query := fmt.Sprintf(`SELECT id, value, is_deleted FROM %s WHERE value = $1 AND is_deleted = FALSE ORDER BY id LIMIT 1`, table)
	err := r.DB.GetContext(ctx, &option, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up option by value in %s: %w", table, err)
	}
	return &option, nil
}
