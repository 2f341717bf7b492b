package assetservice

import (
	"context"
	"testing"

	"inventaris/models"
	"inventaris/providers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopLogger struct{}

func (nopLogger) InitLogger()            {}
func (nopLogger) SyncLogger()            {}
func (nopLogger) GetLogger() *zap.Logger { return zap.NewNop() }

var _ providers.ZapLoggerProvider = nopLogger{}

// fakeAssetRepo lets each test override just the calls it cares about and
// records the spec writes for inspection.
type fakeAssetRepo struct {
	category      string
	categoryErr   error
	optionExists  bool
	existingAsset *AssetRes

	insertedAsset     *AssetReq
	upsertedTable     string
	upsertedSpecs     *ComputerSpecsReq
	upsertedPrinter   *PrinterSpecsReq
	upsertedAccount   *OfficeAccountReq
	deletedAccountFor int64
}

func (f *fakeAssetRepo) GetCategoryValue(ctx context.Context, tx *sqlx.Tx, categoryID int64) (string, error) {
	if f.categoryErr != nil {
		return "", f.categoryErr
	}
	return f.category, nil
}

func (f *fakeAssetRepo) OptionExists(ctx context.Context, tx *sqlx.Tx, table string, id int64) (bool, error) {
	return f.optionExists, nil
}

func (f *fakeAssetRepo) InsertAsset(ctx context.Context, tx *sqlx.Tx, req AssetReq) (int64, error) {
	f.insertedAsset = &req
	return 42, nil
}

func (f *fakeAssetRepo) UpdateAsset(ctx context.Context, tx *sqlx.Tx, assetID int64, req AssetReq) error {
	return nil
}

func (f *fakeAssetRepo) SoftDeleteAsset(ctx context.Context, assetID int64) error { return nil }

func (f *fakeAssetRepo) UpsertComputerSpecs(ctx context.Context, tx *sqlx.Tx, table string, assetID int64, cfg ComputerSpecsReq) error {
	f.upsertedTable = table
	f.upsertedSpecs = &cfg
	return nil
}

func (f *fakeAssetRepo) UpsertPrinterSpecs(ctx context.Context, tx *sqlx.Tx, assetID int64, cfg PrinterSpecsReq) error {
	f.upsertedPrinter = &cfg
	return nil
}

func (f *fakeAssetRepo) UpsertOfficeAccount(ctx context.Context, tx *sqlx.Tx, assetID int64, req OfficeAccountReq) error {
	f.upsertedAccount = &req
	return nil
}

func (f *fakeAssetRepo) DeleteOfficeAccount(ctx context.Context, tx *sqlx.Tx, assetID int64) error {
	f.deletedAccountFor = assetID
	return nil
}

func (f *fakeAssetRepo) GetAssetByID(ctx context.Context, assetID int64) (*AssetRes, error) {
	if f.existingAsset == nil {
		return nil, models.NewNotFoundError("asset", assetID)
	}
	return f.existingAsset, nil
}

func (f *fakeAssetRepo) GetComputerSpecs(ctx context.Context, table string, assetID int64) (*ComputerSpecsRes, error) {
	return nil, nil
}

func (f *fakeAssetRepo) GetPrinterSpecs(ctx context.Context, assetID int64) (*PrinterSpecsRes, error) {
	return nil, nil
}

func (f *fakeAssetRepo) GetOfficeAccount(ctx context.Context, assetID int64) (*OfficeAccountRes, error) {
	return nil, nil
}

func (f *fakeAssetRepo) SearchAssetsWithFilter(ctx context.Context, filter AssetFilter) ([]AssetRes, int64, error) {
	return nil, 0, nil
}

func newServiceWithMockTx(t *testing.T, repo AssetRepository) (AssetService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAssetService(repo, sqlx.NewDb(db, "postgres"), nopLogger{}), mock
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateAssetRejectsWrongCategorySpecs(t *testing.T) {
	tests := []struct {
		name     string
		category string
		req      AssetReq
	}{
		{
			name:     "laptop specs on a printer",
			category: models.CategoryPrinter,
			req: AssetReq{
				NamaAsset:   "HP LaserJet",
				NomorSeri:   "SN-001",
				CategoryID:  3,
				StatusAsset: models.StatusGood,
				LaptopSpecs: &ComputerSpecsReq{MacWlan: "aabbccddeeff"},
			},
		},
		{
			name:     "printer specs on a laptop",
			category: models.CategoryLaptop,
			req: AssetReq{
				NamaAsset:    "ThinkPad",
				NomorSeri:    "SN-002",
				CategoryID:   1,
				StatusAsset:  models.StatusGood,
				PrinterSpecs: &PrinterSpecsReq{},
			},
		},
		{
			name:     "intel nuc specs on a laptop",
			category: models.CategoryLaptop,
			req: AssetReq{
				NamaAsset:     "ThinkPad",
				NomorSeri:     "SN-003",
				CategoryID:    1,
				StatusAsset:   models.StatusGood,
				IntelNucSpecs: &ComputerSpecsReq{},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAssetRepo{category: tc.category, optionExists: true}
			service, mock := newServiceWithMockTx(t, repo)

			mock.ExpectBegin()
			mock.ExpectRollback()

			_, err := service.CreateAssetWithSpecs(context.Background(), tc.req)

			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Nil(t, repo.insertedAsset, "rejected request must not write the asset")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateAssetNormalizesMacAndLicenseKey(t *testing.T) {
	repo := &fakeAssetRepo{category: models.CategoryLaptop, optionExists: true}
	service, mock := newServiceWithMockTx(t, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := AssetReq{
		NamaAsset:   "ThinkPad X1",
		NomorSeri:   "SN-100",
		CategoryID:  1,
		StatusAsset: models.StatusGood,
		LaptopSpecs: &ComputerSpecsReq{
			MacWlan:    "aa-bb-cc-dd-ee-ff",
			MacLan:     "00 1A 2B 3C 4D 5E",
			LicenseKey: "abcde12345fghij67890klmno",
		},
	}

	asset, err := service.CreateAssetWithSpecs(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), asset.ID)

	require.NotNil(t, repo.upsertedSpecs)
	assert.Equal(t, "laptop_specs", repo.upsertedTable)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", repo.upsertedSpecs.MacWlan)
	assert.Equal(t, "00:1A:2B:3C:4D:5E", repo.upsertedSpecs.MacLan)
	assert.Equal(t, "abcde-12345-fghij-67890-klmno", repo.upsertedSpecs.LicenseKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssetRejectsMalformedMac(t *testing.T) {
	repo := &fakeAssetRepo{category: models.CategoryLaptop, optionExists: true}
	service, mock := newServiceWithMockTx(t, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := AssetReq{
		NamaAsset:   "ThinkPad X1",
		NomorSeri:   "SN-101",
		CategoryID:  1,
		StatusAsset: models.StatusGood,
		LaptopSpecs: &ComputerSpecsReq{MacWlan: "aabb"},
	}

	_, err := service.CreateAssetWithSpecs(context.Background(), req)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "macWlan", ve.Field)
}

func TestCreateAssetRejectsUnknownOption(t *testing.T) {
	repo := &fakeAssetRepo{category: models.CategoryLaptop, optionExists: false}
	service, mock := newServiceWithMockTx(t, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := AssetReq{
		NamaAsset:   "ThinkPad X1",
		NomorSeri:   "SN-102",
		CategoryID:  1,
		StatusAsset: models.StatusGood,
		LaptopSpecs: &ComputerSpecsReq{RamOptionID: int64Ptr(999)},
	}

	_, err := service.CreateAssetWithSpecs(context.Background(), req)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ramOptionId", ve.Field)
	assert.Nil(t, repo.upsertedSpecs)
}

func TestCreateAssetRejectsUnknownCategory(t *testing.T) {
	repo := &fakeAssetRepo{categoryErr: models.NewNotFoundError("category", 77)}
	service, mock := newServiceWithMockTx(t, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := AssetReq{
		NamaAsset:   "Mystery",
		NomorSeri:   "SN-103",
		CategoryID:  77,
		StatusAsset: models.StatusGood,
	}

	_, err := service.CreateAssetWithSpecs(context.Background(), req)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve, "unknown category on input surfaces as a validation error")
	assert.Equal(t, "categoryId", ve.Field)
}

func TestCreateAssetRejectsInvalidStatus(t *testing.T) {
	repo := &fakeAssetRepo{category: models.CategoryLaptop}
	service, _ := newServiceWithMockTx(t, repo)

	req := AssetReq{
		NamaAsset:   "ThinkPad",
		NomorSeri:   "SN-104",
		CategoryID:  1,
		StatusAsset: "SORT OF FINE",
	}

	_, err := service.CreateAssetWithSpecs(context.Background(), req)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "statusAsset", ve.Field)
}

func TestOfficeAccountOnlyOnIntelNuc(t *testing.T) {
	repo := &fakeAssetRepo{category: models.CategoryLaptop, optionExists: true}
	service, mock := newServiceWithMockTx(t, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := AssetReq{
		NamaAsset:        "ThinkPad",
		NomorSeri:        "SN-105",
		CategoryID:       1,
		StatusAsset:      models.StatusGood,
		HasOfficeAccount: true,
		OfficeAccount:    &OfficeAccountReq{Email: "x@corp.id", Password: "pw"},
	}

	_, err := service.CreateAssetWithSpecs(context.Background(), req)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "hasOfficeAccount", ve.Field)
}

func TestUpdateAssetOfficeAccountToggle(t *testing.T) {
	existing := &AssetRes{ID: 42, CategoryID: 2, Category: models.CategoryIntelNuc}

	t.Run("toggled on upserts the account", func(t *testing.T) {
		repo := &fakeAssetRepo{category: models.CategoryIntelNuc, optionExists: true, existingAsset: existing}
		service, mock := newServiceWithMockTx(t, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		req := AssetReq{
			NamaAsset:        "NUC-7",
			NomorSeri:        "SN-200",
			StatusAsset:      models.StatusGood,
			IntelNucSpecs:    &ComputerSpecsReq{},
			HasOfficeAccount: true,
			OfficeAccount:    &OfficeAccountReq{Email: "nuc7@corp.id", Password: "pw", IsActive: true},
		}

		_, err := service.UpdateAssetWithSpecs(context.Background(), 42, req)
		require.NoError(t, err)
		require.NotNil(t, repo.upsertedAccount)
		assert.Equal(t, "nuc7@corp.id", repo.upsertedAccount.Email)
		assert.Zero(t, repo.deletedAccountFor)
	})

	t.Run("toggled off deletes the account row", func(t *testing.T) {
		repo := &fakeAssetRepo{category: models.CategoryIntelNuc, optionExists: true, existingAsset: existing}
		service, mock := newServiceWithMockTx(t, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		req := AssetReq{
			NamaAsset:        "NUC-7",
			NomorSeri:        "SN-200",
			StatusAsset:      models.StatusGood,
			HasOfficeAccount: false,
		}

		_, err := service.UpdateAssetWithSpecs(context.Background(), 42, req)
		require.NoError(t, err)
		assert.Nil(t, repo.upsertedAccount)
		assert.Equal(t, int64(42), repo.deletedAccountFor)
	})
}

func TestUpdateAssetCategoryImmutable(t *testing.T) {
	repo := &fakeAssetRepo{
		category:      models.CategoryLaptop,
		existingAsset: &AssetRes{ID: 42, CategoryID: 1, Category: models.CategoryLaptop},
	}
	service, _ := newServiceWithMockTx(t, repo)

	req := AssetReq{
		NamaAsset:   "ThinkPad",
		NomorSeri:   "SN-300",
		CategoryID:  3,
		StatusAsset: models.StatusGood,
	}

	_, err := service.UpdateAssetWithSpecs(context.Background(), 42, req)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "categoryId", ve.Field)
}
