package phoneservice

import (
	"context"
	"testing"
	"time"

	"inventaris/models"
	"inventaris/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopLogger struct{}

func (nopLogger) InitLogger()            {}
func (nopLogger) SyncLogger()            {}
func (nopLogger) GetLogger() *zap.Logger { return zap.NewNop() }

var _ providers.ZapLoggerProvider = nopLogger{}

type fakePhoneRepo struct {
	employeeExists     bool
	account            *PhoneAccountRes
	defaultRateID      *int64
	callOutgoingExists bool

	insertedAccount *PhoneAccountReq
	insertedBilling *BillingRecordReq
	insertedExt     *int
	insertedCost    int64
	lookedUpRate    string
}

func (f *fakePhoneRepo) EmployeeExists(ctx context.Context, userID int64) (bool, error) {
	return f.employeeExists, nil
}

func (f *fakePhoneRepo) FindCallOutgoingIDByValue(ctx context.Context, value string) (*int64, error) {
	f.lookedUpRate = value
	return f.defaultRateID, nil
}

func (f *fakePhoneRepo) CallOutgoingExists(ctx context.Context, id int64) (bool, error) {
	return f.callOutgoingExists, nil
}

func (f *fakePhoneRepo) GetPhoneAccountByUserID(ctx context.Context, userID int64) (*PhoneAccountRes, error) {
	return f.account, nil
}

func (f *fakePhoneRepo) InsertPhoneAccount(ctx context.Context, req PhoneAccountReq) (int64, error) {
	f.insertedAccount = &req
	return 5, nil
}

func (f *fakePhoneRepo) UpdatePhoneAccount(ctx context.Context, accountID int64, req PhoneAccountReq) error {
	return nil
}

func (f *fakePhoneRepo) DeletePhoneAccount(ctx context.Context, accountID int64) error { return nil }

func (f *fakePhoneRepo) ListPhoneAccounts(ctx context.Context) ([]PhoneAccountRes, error) {
	return nil, nil
}

func (f *fakePhoneRepo) InsertBillingRecord(ctx context.Context, req BillingRecordReq, extension *int, cost int64) (int64, error) {
	f.insertedBilling = &req
	f.insertedExt = extension
	f.insertedCost = cost
	return 9, nil
}

func (f *fakePhoneRepo) DeleteBillingRecord(ctx context.Context, recordID int64) error { return nil }

func (f *fakePhoneRepo) ListBillingRecords(ctx context.Context, userID int64, limit, offset int) ([]BillingRecordRes, int64, error) {
	return nil, 0, nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreatePhoneAccount(t *testing.T) {
	t.Run("defaults the outgoing rate when none chosen", func(t *testing.T) {
		repo := &fakePhoneRepo{employeeExists: true, defaultRateID: int64Ptr(2)}
		service := NewPhoneService(repo, nopLogger{}, "12")

		_, err := service.CreatePhoneAccount(context.Background(), PhoneAccountReq{UserID: 1, Extension: 101})
		require.NoError(t, err)
		assert.Equal(t, "12", repo.lookedUpRate)
		require.NotNil(t, repo.insertedAccount.CallOutgoingID)
		assert.Equal(t, int64(2), *repo.insertedAccount.CallOutgoingID)
	})

	t.Run("one account per user", func(t *testing.T) {
		repo := &fakePhoneRepo{
			employeeExists: true,
			account:        &PhoneAccountRes{ID: 5, UserID: 1, Extension: 101},
		}
		service := NewPhoneService(repo, nopLogger{}, "12")

		_, err := service.CreatePhoneAccount(context.Background(), PhoneAccountReq{UserID: 1, Extension: 102})
		var ce *models.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Nil(t, repo.insertedAccount)
	})

	t.Run("rejects unknown rate option", func(t *testing.T) {
		repo := &fakePhoneRepo{employeeExists: true}
		service := NewPhoneService(repo, nopLogger{}, "12")

		_, err := service.CreatePhoneAccount(context.Background(), PhoneAccountReq{
			UserID: 1, Extension: 101, CallOutgoingID: int64Ptr(999),
		})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		repo := &fakePhoneRepo{}
		service := NewPhoneService(repo, nopLogger{}, "12")

		_, err := service.CreatePhoneAccount(context.Background(), PhoneAccountReq{UserID: 404, Extension: 101})
		var nf *models.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestCreateBillingRecord(t *testing.T) {
	callDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("derives the extension from the phone account", func(t *testing.T) {
		repo := &fakePhoneRepo{
			employeeExists: true,
			account:        &PhoneAccountRes{ID: 5, UserID: 1, Extension: 101},
		}
		service := NewPhoneService(repo, nopLogger{}, "12")

		res, err := service.CreateBillingRecord(context.Background(), BillingRecordReq{
			CallDate: callDate, UserID: 1, Duration: "0:05:30",
		})
		require.NoError(t, err)
		assert.Empty(t, res.Warning)
		require.NotNil(t, repo.insertedExt)
		assert.Equal(t, 101, *repo.insertedExt)
	})

	t.Run("missing phone account is a warning, not a rejection", func(t *testing.T) {
		repo := &fakePhoneRepo{employeeExists: true}
		service := NewPhoneService(repo, nopLogger{}, "12")

		res, err := service.CreateBillingRecord(context.Background(), BillingRecordReq{
			CallDate: callDate, UserID: 2, Duration: "0:05:30",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Warning)
		assert.Nil(t, repo.insertedExt)
	})

	t.Run("parses a formatted rupiah cost", func(t *testing.T) {
		repo := &fakePhoneRepo{employeeExists: true}
		service := NewPhoneService(repo, nopLogger{}, "12")

		_, err := service.CreateBillingRecord(context.Background(), BillingRecordReq{
			CallDate: callDate, UserID: 2, Duration: "0:01:00", Cost: "Rp1.500.000",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1500000), repo.insertedCost)
	})

	t.Run("normalizes a digit-blob duration", func(t *testing.T) {
		repo := &fakePhoneRepo{employeeExists: true}
		service := NewPhoneService(repo, nopLogger{}, "12")

		_, err := service.CreateBillingRecord(context.Background(), BillingRecordReq{
			CallDate: callDate, UserID: 2, Duration: "1234",
		})
		require.NoError(t, err)
		require.NotNil(t, repo.insertedBilling)
		assert.Equal(t, "0:12:34", repo.insertedBilling.Duration)
	})
}
