package assetservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris/models"

	"github.com/jmoiron/sqlx"
)

type AssetRepository interface {
	GetCategoryValue(ctx context.Context, tx *sqlx.Tx, categoryID int64) (string, error)
	OptionExists(ctx context.Context, tx *sqlx.Tx, table string, id int64) (bool, error)

	InsertAsset(ctx context.Context, tx *sqlx.Tx, req AssetReq) (int64, error)
	UpdateAsset(ctx context.Context, tx *sqlx.Tx, assetID int64, req AssetReq) error
	SoftDeleteAsset(ctx context.Context, assetID int64) error

	UpsertComputerSpecs(ctx context.Context, tx *sqlx.Tx, table string, assetID int64, cfg ComputerSpecsReq) error
	UpsertPrinterSpecs(ctx context.Context, tx *sqlx.Tx, assetID int64, cfg PrinterSpecsReq) error
	UpsertOfficeAccount(ctx context.Context, tx *sqlx.Tx, assetID int64, req OfficeAccountReq) error
	DeleteOfficeAccount(ctx context.Context, tx *sqlx.Tx, assetID int64) error

	GetAssetByID(ctx context.Context, assetID int64) (*AssetRes, error)
	GetComputerSpecs(ctx context.Context, table string, assetID int64) (*ComputerSpecsRes, error)
	GetPrinterSpecs(ctx context.Context, assetID int64) (*PrinterSpecsRes, error)
	GetOfficeAccount(ctx context.Context, assetID int64) (*OfficeAccountRes, error)
	SearchAssetsWithFilter(ctx context.Context, filter AssetFilter) ([]AssetRes, int64, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

func (r *PostgresAssetRepository) GetCategoryValue(ctx context.Context, tx *sqlx.Tx, categoryID int64) (string, error) {
	var value string
	err := tx.GetContext(ctx, &value, `
		SELECT value FROM categories WHERE id = $1
	`, categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.NewNotFoundError("category", categoryID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch category: %w", err)
	}
	return value, nil
}

// OptionExists checks existence only; soft-deleted rows still count so that
// historical records can be re-saved without losing their option references.
func (r *PostgresAssetRepository) OptionExists(ctx context.Context, tx *sqlx.Tx, table string, id int64) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := tx.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check option in %s: %w", table, err)
	}
	return exists, nil
}

func (r *PostgresAssetRepository) InsertAsset(ctx context.Context, tx *sqlx.Tx, req AssetReq) (int64, error) {
	var assetID int64
	err := tx.GetContext(ctx, &assetID, `
		INSERT INTO assets (nama_asset, nomor_seri, category_id, tanggal_pembelian, tanggal_garansi, status_asset)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		req.NamaAsset, req.NomorSeri, req.CategoryID, req.TanggalPembelian, req.TanggalGaransi, req.StatusAsset)
	if err != nil {
		return 0, fmt.Errorf("failed to insert asset: %w", err)
	}
	return assetID, nil
}

func (r *PostgresAssetRepository) UpdateAsset(ctx context.Context, tx *sqlx.Tx, assetID int64, req AssetReq) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE assets
		SET nama_asset = $1, nomor_seri = $2, tanggal_pembelian = $3, tanggal_garansi = $4, status_asset = $5
		WHERE id = $6 AND is_deleted = FALSE`,
		req.NamaAsset, req.NomorSeri, req.TanggalPembelian, req.TanggalGaransi, req.StatusAsset, assetID)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("asset", assetID)
	}
	return nil
}

func (r *PostgresAssetRepository) SoftDeleteAsset(ctx context.Context, assetID int64) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE assets SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE
	`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("asset", assetID)
	}
	return nil
}

// UpsertComputerSpecs serves both laptop_specs and intel_nuc_specs; the two
// tables share one column set and asset_id is unique in each.
func (r *PostgresAssetRepository) UpsertComputerSpecs(ctx context.Context, tx *sqlx.Tx, table string, assetID int64, cfg ComputerSpecsReq) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			asset_id, brand_option_id, processor_option_id, ram_option_id,
			storage_type_option_id, os_option_id, power_option_id,
			microsoft_office_option_id, color_option_id, graphic_option_id,
			license_option_id, type_option_id, mac_wlan, mac_lan, license_key
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (asset_id) DO UPDATE SET
			brand_option_id = EXCLUDED.brand_option_id,
			processor_option_id = EXCLUDED.processor_option_id,
			ram_option_id = EXCLUDED.ram_option_id,
			storage_type_option_id = EXCLUDED.storage_type_option_id,
			os_option_id = EXCLUDED.os_option_id,
			power_option_id = EXCLUDED.power_option_id,
			microsoft_office_option_id = EXCLUDED.microsoft_office_option_id,
			color_option_id = EXCLUDED.color_option_id,
			graphic_option_id = EXCLUDED.graphic_option_id,
			license_option_id = EXCLUDED.license_option_id,
			type_option_id = EXCLUDED.type_option_id,
			mac_wlan = EXCLUDED.mac_wlan,
			mac_lan = EXCLUDED.mac_lan,
			license_key = EXCLUDED.license_key`, table)

	_, err := tx.ExecContext(ctx, query,
		assetID, cfg.BrandOptionID, cfg.ProcessorOptionID, cfg.RamOptionID,
		cfg.StorageTypeOptionID, cfg.OsOptionID, cfg.PowerOptionID,
		cfg.MicrosoftOfficeOptionID, cfg.ColorOptionID, cfg.GraphicOptionID,
		cfg.LicenseOptionID, cfg.TypeOptionID, cfg.MacWlan, cfg.MacLan, cfg.LicenseKey)
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", table, err)
	}
	return nil
}

func (r *PostgresAssetRepository) UpsertPrinterSpecs(ctx context.Context, tx *sqlx.Tx, assetID int64, cfg PrinterSpecsReq) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO printer_specs (asset_id, printer_brand_option_id, printer_type_option_id, printer_model_option_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (asset_id) DO UPDATE SET
			printer_brand_option_id = EXCLUDED.printer_brand_option_id,
			printer_type_option_id = EXCLUDED.printer_type_option_id,
			printer_model_option_id = EXCLUDED.printer_model_option_id`,
		assetID, cfg.PrinterBrandOptionID, cfg.PrinterTypeOptionID, cfg.PrinterModelOptionID)
	if err != nil {
		return fmt.Errorf("failed to upsert printer specs: %w", err)
	}
	return nil
}

func (r *PostgresAssetRepository) UpsertOfficeAccount(ctx context.Context, tx *sqlx.Tx, assetID int64, req OfficeAccountReq) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO office_accounts (asset_id, email, password, license_expiry, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (asset_id) DO UPDATE SET
			email = EXCLUDED.email,
			password = EXCLUDED.password,
			license_expiry = EXCLUDED.license_expiry,
			is_active = EXCLUDED.is_active`,
		assetID, req.Email, req.Password, req.LicenseExpiry, req.IsActive)
	if err != nil {
		return fmt.Errorf("failed to upsert office account: %w", err)
	}
	return nil
}

func (r *PostgresAssetRepository) DeleteOfficeAccount(ctx context.Context, tx *sqlx.Tx, assetID int64) error {
	_, err := tx.ExecContext(ctx, `
		DELETE FROM office_accounts WHERE asset_id = $1
	`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete office account: %w", err)
	}
	return nil
}

func (r *PostgresAssetRepository) GetAssetByID(ctx context.Context, assetID int64) (*AssetRes, error) {
	var asset AssetRes
	err := r.DB.GetContext(ctx, &asset, `
		SELECT a.id, a.nama_asset, a.nomor_seri, a.category_id, c.value AS category_value,
		       a.tanggal_pembelian, a.tanggal_garansi, a.status_asset
		FROM assets a
		JOIN categories c ON c.id = a.category_id
		WHERE a.id = $1 AND a.is_deleted = FALSE
	`, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("asset", assetID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return &asset, nil
}

// Spec lookups join the option tables without an is_deleted filter so that
// soft-deleted options still resolve for historical records.
func (r *PostgresAssetRepository) GetComputerSpecs(ctx context.Context, table string, assetID int64) (*ComputerSpecsRes, error) {
	var specs ComputerSpecsRes
	query := fmt.Sprintf(`
		SELECT s.brand_option_id, b.value AS brand_value,
		       s.processor_option_id, p.value AS processor_value,
		       s.ram_option_id, ra.value AS ram_value,
		       s.storage_type_option_id, st.value AS storage_type_value,
		       s.os_option_id, o.value AS os_value,
		       s.power_option_id, pw.value AS power_value,
		       s.microsoft_office_option_id, mo.value AS microsoft_office_value,
		       s.color_option_id, co.value AS color_value,
		       s.graphic_option_id, g.value AS graphic_value,
		       s.license_option_id, li.value AS license_value,
		       s.type_option_id, t.value AS type_value,
		       s.mac_wlan, s.mac_lan, s.license_key
		FROM %s s
		LEFT JOIN brand_options b ON b.id = s.brand_option_id
		LEFT JOIN processor_options p ON p.id = s.processor_option_id
		LEFT JOIN ram_options ra ON ra.id = s.ram_option_id
		LEFT JOIN storage_type_options st ON st.id = s.storage_type_option_id
		LEFT JOIN os_options o ON o.id = s.os_option_id
		LEFT JOIN power_options pw ON pw.id = s.power_option_id
		LEFT JOIN microsoft_office_options mo ON mo.id = s.microsoft_office_option_id
		LEFT JOIN color_options co ON co.id = s.color_option_id
		LEFT JOIN graphic_options g ON g.id = s.graphic_option_id
		LEFT JOIN license_options li ON li.id = s.license_option_id
		LEFT JOIN type_options t ON t.id = s.type_option_id
		WHERE s.asset_id = $1`, table)

	err := r.DB.GetContext(ctx, &specs, query, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
	}
	return &specs, nil
}

func (r *PostgresAssetRepository) GetPrinterSpecs(ctx context.Context, assetID int64) (*PrinterSpecsRes, error) {
	var specs PrinterSpecsRes
	err := r.DB.GetContext(ctx, &specs, `
		SELECT s.printer_brand_option_id, pb.value AS printer_brand_value,
		       s.printer_type_option_id, pt.value AS printer_type_value,
		       s.printer_model_option_id, pm.value AS printer_model_value
		FROM printer_specs s
		LEFT JOIN printer_brand_options pb ON pb.id = s.printer_brand_option_id
		LEFT JOIN printer_type_options pt ON pt.id = s.printer_type_option_id
		LEFT JOIN printer_model_options pm ON pm.id = s.printer_model_option_id
		WHERE s.asset_id = $1
	`, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch printer specs: %w", err)
	}
	return &specs, nil
}

func (r *PostgresAssetRepository) GetOfficeAccount(ctx context.Context, assetID int64) (*OfficeAccountRes, error) {
	var account OfficeAccountRes
	err := r.DB.GetContext(ctx, &account, `
		SELECT email, password, license_expiry, is_active
		FROM office_accounts
		WHERE asset_id = $1
	`, assetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch office account: %w", err)
	}
	return &account, nil
}

func (r *PostgresAssetRepository) SearchAssetsWithFilter(ctx context.Context, filter AssetFilter) ([]AssetRes, int64, error) {
	where := `WHERE a.is_deleted = FALSE
		AND ($1 = '' OR a.nama_asset ILIKE '%' || $1 || '%')
		AND ($2 = '' OR a.nomor_seri ILIKE '%' || $2 || '%')
		AND ($3 = '' OR a.status_asset = $3)
		AND ($4::bigint = 0 OR a.category_id = $4)`

	var total int64
	err := r.DB.GetContext(ctx, &total, `
		SELECT count(*) FROM assets a `+where,
		filter.NamaAsset, filter.NomorSeri, filter.Status, filter.CategoryID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	assets := make([]AssetRes, 0)
	err = r.DB.SelectContext(ctx, &assets, `
		SELECT a.id, a.nama_asset, a.nomor_seri, a.category_id, c.value AS category_value,
		       a.tanggal_pembelian, a.tanggal_garansi, a.status_asset
		FROM assets a
		JOIN categories c ON c.id = a.category_id `+where+`
		ORDER BY a.id
		LIMIT $5 OFFSET $6`,
		filter.NamaAsset, filter.NomorSeri, filter.Status, filter.CategoryID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search assets: %w", err)
	}
	return assets, total, nil
}
