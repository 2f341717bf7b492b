package assetservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventaris/models"
	"inventaris/providers"
	"inventaris/utils"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AssetService interface {
	CreateAssetWithSpecs(ctx context.Context, req AssetReq) (*AssetRes, error)
	UpdateAssetWithSpecs(ctx context.Context, assetID int64, req AssetReq) (*AssetRes, error)
	GetAssetByID(ctx context.Context, assetID int64) (*AssetRes, error)
	GetAssetsWithFilters(ctx context.Context, filter AssetFilter) (*AssetListRes, error)
	DeleteAsset(ctx context.Context, assetID int64) error
}

type assetService struct {
	repo   AssetRepository
	db     *sqlx.DB
	logger providers.ZapLoggerProvider
}

func NewAssetService(repo AssetRepository, db *sqlx.DB, logger providers.ZapLoggerProvider) AssetService {
	return &assetService{repo: repo, db: db, logger: logger}
}

func specTableForCategory(category string) string {
	switch category {
	case models.CategoryLaptop:
		return "laptop_specs"
	case models.CategoryIntelNuc:
		return "intel_nuc_specs"
	case models.CategoryPrinter:
		return "printer_specs"
	}
	return ""
}

// computerSpecsForCategory returns the one computer-specs payload allowed for
// the category, rejecting payloads aimed at the wrong specs table.
func computerSpecsForCategory(category string, req AssetReq) (*ComputerSpecsReq, error) {
	if req.LaptopSpecs != nil && category != models.CategoryLaptop {
		return nil, models.NewValidationError("laptopSpecs", "asset category is "+category)
	}
	if req.IntelNucSpecs != nil && category != models.CategoryIntelNuc {
		return nil, models.NewValidationError("intelNucSpecs", "asset category is "+category)
	}
	if req.PrinterSpecs != nil && category == models.CategoryLaptop {
		return nil, models.NewValidationError("printerSpecs", "asset category is "+category)
	}
	if req.PrinterSpecs != nil && category == models.CategoryIntelNuc {
		return nil, models.NewValidationError("printerSpecs", "asset category is "+category)
	}

	switch category {
	case models.CategoryLaptop:
		if req.LaptopSpecs != nil {
			return req.LaptopSpecs, nil
		}
	case models.CategoryIntelNuc:
		if req.IntelNucSpecs != nil {
			return req.IntelNucSpecs, nil
		}
	}
	return &ComputerSpecsReq{}, nil
}

func validateAssetReq(req AssetReq) error {
	if strings.TrimSpace(req.NamaAsset) == "" {
		return models.NewValidationError("namaAsset", "required")
	}
	if strings.TrimSpace(req.NomorSeri) == "" {
		return models.NewValidationError("nomorSeri", "required")
	}
	if !models.IsAssetStatusValid(req.StatusAsset) {
		return models.NewValidationError("statusAsset", "unknown status "+req.StatusAsset)
	}
	return nil
}

// normalizeComputerSpecs rewrites the free-text fields into their canonical
// shapes before they are persisted.
func normalizeComputerSpecs(cfg *ComputerSpecsReq) error {
	if cfg.MacWlan != "" {
		cfg.MacWlan = utils.NormalizeMac(cfg.MacWlan)
		if !utils.IsMacValid(cfg.MacWlan) {
			return models.NewValidationError("macWlan", "must be 6 colon-separated hex octets")
		}
	}
	if cfg.MacLan != "" {
		cfg.MacLan = utils.NormalizeMac(cfg.MacLan)
		if !utils.IsMacValid(cfg.MacLan) {
			return models.NewValidationError("macLan", "must be 6 colon-separated hex octets")
		}
	}
	if cfg.LicenseKey != "" {
		cfg.LicenseKey = utils.NormalizeLicenseKey(cfg.LicenseKey)
	}
	return nil
}

func (s *assetService) validateComputerOptionRefs(ctx context.Context, tx *sqlx.Tx, cfg *ComputerSpecsReq) error {
	refs := []struct {
		field string
		table string
		id    *int64
	}{
		{"brandOptionId", "brand_options", cfg.BrandOptionID},
		{"processorOptionId", "processor_options", cfg.ProcessorOptionID},
		{"ramOptionId", "ram_options", cfg.RamOptionID},
		{"storageTypeOptionId", "storage_type_options", cfg.StorageTypeOptionID},
		{"osOptionId", "os_options", cfg.OsOptionID},
		{"powerOptionId", "power_options", cfg.PowerOptionID},
		{"microsoftOfficeOptionId", "microsoft_office_options", cfg.MicrosoftOfficeOptionID},
		{"colorOptionId", "color_options", cfg.ColorOptionID},
		{"graphicOptionId", "graphic_options", cfg.GraphicOptionID},
		{"licenseOptionId", "license_options", cfg.LicenseOptionID},
		{"typeOptionId", "type_options", cfg.TypeOptionID},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		exists, err := s.repo.OptionExists(ctx, tx, ref.table, *ref.id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewValidationError(ref.field, fmt.Sprintf("option %d does not exist", *ref.id))
		}
	}
	return nil
}

func (s *assetService) validatePrinterOptionRefs(ctx context.Context, tx *sqlx.Tx, cfg *PrinterSpecsReq) error {
	refs := []struct {
		field string
		table string
		id    *int64
	}{
		{"printerBrandOptionId", "printer_brand_options", cfg.PrinterBrandOptionID},
		{"printerTypeOptionId", "printer_type_options", cfg.PrinterTypeOptionID},
		{"printerModelOptionId", "printer_model_options", cfg.PrinterModelOptionID},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		exists, err := s.repo.OptionExists(ctx, tx, ref.table, *ref.id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewValidationError(ref.field, fmt.Sprintf("option %d does not exist", *ref.id))
		}
	}
	return nil
}

func validateOfficeAccount(category string, req AssetReq) error {
	if !req.HasOfficeAccount {
		return nil
	}
	if category != models.CategoryIntelNuc {
		return models.NewValidationError("hasOfficeAccount", "office accounts only attach to Intel NUC assets")
	}
	if req.OfficeAccount == nil {
		return models.NewValidationError("officeAccount", "required when hasOfficeAccount is true")
	}
	if strings.TrimSpace(req.OfficeAccount.Email) == "" {
		return models.NewValidationError("officeAccount.email", "required")
	}
	if strings.TrimSpace(req.OfficeAccount.Password) == "" {
		return models.NewValidationError("officeAccount.password", "required")
	}
	return nil
}

// writeSpecs persists the category-matching specification row (and the office
// account transition) inside the caller's transaction.
func (s *assetService) writeSpecs(ctx context.Context, tx *sqlx.Tx, assetID int64, category string, req AssetReq) error {
	if category == models.CategoryPrinter {
		cfg := req.PrinterSpecs
		if cfg == nil {
			cfg = &PrinterSpecsReq{}
		}
		if err := s.validatePrinterOptionRefs(ctx, tx, cfg); err != nil {
			return err
		}
		return s.repo.UpsertPrinterSpecs(ctx, tx, assetID, *cfg)
	}

	cfg, err := computerSpecsForCategory(category, req)
	if err != nil {
		return err
	}
	if err := normalizeComputerSpecs(cfg); err != nil {
		return err
	}
	if err := s.validateComputerOptionRefs(ctx, tx, cfg); err != nil {
		return err
	}
	if err := s.repo.UpsertComputerSpecs(ctx, tx, specTableForCategory(category), assetID, *cfg); err != nil {
		return err
	}

	if req.HasOfficeAccount {
		return s.repo.UpsertOfficeAccount(ctx, tx, assetID, *req.OfficeAccount)
	}
	return s.repo.DeleteOfficeAccount(ctx, tx, assetID)
}

func (s *assetService) CreateAssetWithSpecs(ctx context.Context, req AssetReq) (asset *AssetRes, err error) {
	if err = validateAssetReq(req); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	category, err := s.repo.GetCategoryValue(ctx, tx, req.CategoryID)
	if err != nil {
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			return nil, models.NewValidationError("categoryId", fmt.Sprintf("category %d does not exist", req.CategoryID))
		}
		return nil, err
	}

	// category mismatch and office-account checks happen before any write so
	// a rejected request never touches the store
	if _, err = computerSpecsForCategory(category, req); err != nil {
		return nil, err
	}
	if err = validateOfficeAccount(category, req); err != nil {
		return nil, err
	}

	assetID, err := s.repo.InsertAsset(ctx, tx, req)
	if err != nil {
		return nil, err
	}
	if err = s.writeSpecs(ctx, tx, assetID, category, req); err != nil {
		return nil, err
	}

	s.logger.GetLogger().Info("asset created",
		zap.Int64("asset_id", assetID),
		zap.String("category", category))

	asset = &AssetRes{
		ID:               assetID,
		NamaAsset:        req.NamaAsset,
		NomorSeri:        req.NomorSeri,
		CategoryID:       req.CategoryID,
		Category:         category,
		TanggalPembelian: req.TanggalPembelian,
		TanggalGaransi:   req.TanggalGaransi,
		StatusAsset:      req.StatusAsset,
	}
	return asset, nil
}

func (s *assetService) UpdateAssetWithSpecs(ctx context.Context, assetID int64, req AssetReq) (asset *AssetRes, err error) {
	if err = validateAssetReq(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	// category is immutable; specs always target the table the asset was
	// created with
	if req.CategoryID != 0 && req.CategoryID != existing.CategoryID {
		return nil, models.NewValidationError("categoryId", "asset category cannot be changed")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = computerSpecsForCategory(existing.Category, req); err != nil {
		return nil, err
	}
	if err = validateOfficeAccount(existing.Category, req); err != nil {
		return nil, err
	}

	if err = s.repo.UpdateAsset(ctx, tx, assetID, req); err != nil {
		return nil, err
	}
	if err = s.writeSpecs(ctx, tx, assetID, existing.Category, req); err != nil {
		return nil, err
	}

	s.logger.GetLogger().Info("asset updated", zap.Int64("asset_id", assetID))

	asset = &AssetRes{
		ID:               assetID,
		NamaAsset:        req.NamaAsset,
		NomorSeri:        req.NomorSeri,
		CategoryID:       existing.CategoryID,
		Category:         existing.Category,
		TanggalPembelian: req.TanggalPembelian,
		TanggalGaransi:   req.TanggalGaransi,
		StatusAsset:      req.StatusAsset,
	}
	return asset, nil
}

// GetAssetByID resolves the specification variant matching the asset's
// category; the other variants stay nil.
func (s *assetService) GetAssetByID(ctx context.Context, assetID int64) (*AssetRes, error) {
	asset, err := s.repo.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	spec := &Specification{Category: asset.Category}
	switch asset.Category {
	case models.CategoryLaptop:
		spec.Laptop, err = s.repo.GetComputerSpecs(ctx, "laptop_specs", assetID)
	case models.CategoryIntelNuc:
		spec.IntelNuc, err = s.repo.GetComputerSpecs(ctx, "intel_nuc_specs", assetID)
		if err == nil {
			spec.OfficeAccount, err = s.repo.GetOfficeAccount(ctx, assetID)
		}
	case models.CategoryPrinter:
		spec.Printer, err = s.repo.GetPrinterSpecs(ctx, assetID)
	}
	if err != nil {
		return nil, err
	}
	asset.Specification = spec
	return asset, nil
}

func (s *assetService) GetAssetsWithFilters(ctx context.Context, filter AssetFilter) (*AssetListRes, error) {
	assets, total, err := s.repo.SearchAssetsWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &AssetListRes{
		Data:      assets,
		PageCount: utils.PageCount(total, filter.Limit),
	}, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID int64) error {
	return s.repo.SoftDeleteAsset(ctx, assetID)
}
