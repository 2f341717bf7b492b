package assignmentservice

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

type fakeAssignmentRepo struct {
	assetExists    bool
	employeeExists bool
	hasAssignment  bool

	inserted       *AssignmentReq
	insertedBy     int64
	listCategories []string
}

func (f *fakeAssignmentRepo) AssetExists(ctx context.Context, tx *sqlx.Tx, assetID int64) (bool, error) {
	return f.assetExists, nil
}

func (f *fakeAssignmentRepo) EmployeeExists(ctx context.Context, tx *sqlx.Tx, userID int64) (bool, error) {
	return f.employeeExists, nil
}

func (f *fakeAssignmentRepo) HasAssignment(ctx context.Context, tx *sqlx.Tx, assetID int64) (bool, error) {
	return f.hasAssignment, nil
}

func (f *fakeAssignmentRepo) InsertAssignment(ctx context.Context, tx *sqlx.Tx, req AssignmentReq, assignedBy int64) (int64, error) {
	f.inserted = &req
	f.insertedBy = assignedBy
	return 7, nil
}

func (f *fakeAssignmentRepo) UpdateAssignment(ctx context.Context, assignmentID int64, req AssignmentReq) error {
	return nil
}

func (f *fakeAssignmentRepo) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	return nil
}

func (f *fakeAssignmentRepo) ListAssignments(ctx context.Context, categories []string, limit, offset int) ([]AssignmentRes, int64, error) {
	f.listCategories = categories
	return []AssignmentRes{}, 0, nil
}

func newServiceWithMockTx(t *testing.T, repo AssignmentRepository) (AssignmentService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAssignmentService(repo, sqlx.NewDb(db, "postgres"), nopLogger{}), mock
}

func TestCreateAssignment(t *testing.T) {
	req := AssignmentReq{AssetID: 10, UserID: 20, NomorAsset: "MIS/LP/0010"}

	t.Run("assigns a free asset", func(t *testing.T) {
		repo := &fakeAssignmentRepo{assetExists: true, employeeExists: true}
		service, mock := newServiceWithMockTx(t, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		id, err := service.CreateAssignment(context.Background(), req, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, int64(1), repo.insertedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second assignment of the same asset conflicts", func(t *testing.T) {
		repo := &fakeAssignmentRepo{assetExists: true, employeeExists: true, hasAssignment: true}
		service, mock := newServiceWithMockTx(t, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := service.CreateAssignment(context.Background(), req, 1)
		var ce *models.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Nil(t, repo.inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown asset", func(t *testing.T) {
		repo := &fakeAssignmentRepo{employeeExists: true}
		service, mock := newServiceWithMockTx(t, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := service.CreateAssignment(context.Background(), req, 1)
		var nf *models.NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo := &fakeAssignmentRepo{assetExists: true}
		service, mock := newServiceWithMockTx(t, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := service.CreateAssignment(context.Background(), req, 1)
		var nf *models.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestGetAssignmentsGroupFilter(t *testing.T) {
	tests := []struct {
		name       string
		group      string
		categories []string
		wantErr    bool
	}{
		{name: "all", group: "", categories: nil},
		{name: "computer", group: "computer", categories: []string{models.CategoryLaptop, models.CategoryIntelNuc}},
		{name: "printer", group: "printer", categories: []string{models.CategoryPrinter}},
		{name: "unknown group", group: "toaster", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAssignmentRepo{}
			service, _ := newServiceWithMockTx(t, repo)

			_, err := service.GetAssignments(context.Background(), AssignmentFilter{Group: tc.group, Limit: 10})
			if tc.wantErr {
				var ve *models.ValidationError
				require.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.categories, repo.listCategories)
		})
	}
}
