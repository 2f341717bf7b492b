package employeeservice

import (
	"context"
	"net/http"
	"testing"

	"inventaris/models"
	"inventaris/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type nopLogger struct{}

func (nopLogger) InitLogger()            {}
func (nopLogger) SyncLogger()            {}
func (nopLogger) GetLogger() *zap.Logger { return zap.NewNop() }

var _ providers.ZapLoggerProvider = nopLogger{}

type fakeAuth struct {
	issuedFor  int64
	issuedRole string
}

func (f *fakeAuth) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func (f *fakeAuth) RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func (f *fakeAuth) GetUserAndRoleFromContext(r *http.Request) (int64, string, error) {
	return 0, "", nil
}

func (f *fakeAuth) GenerateJWT(userID int64, role string) (string, error) {
	f.issuedFor = userID
	f.issuedRole = role
	return "token-ok", nil
}

var _ providers.AuthMiddlewareService = (*fakeAuth)(nil)

type fakeEmployeeRepo struct {
	creds      *employeeCredentials
	emailTaken bool

	insertedReq  *EmployeeReq
	insertedHash string
}

func (f *fakeEmployeeRepo) InsertEmployee(ctx context.Context, req EmployeeReq, passwordHash string) (int64, error) {
	f.insertedReq = &req
	f.insertedHash = passwordHash
	return 11, nil
}

func (f *fakeEmployeeRepo) UpdateEmployee(ctx context.Context, employeeID int64, req EmployeeReq) error {
	return nil
}

func (f *fakeEmployeeRepo) DeactivateEmployee(ctx context.Context, employeeID int64) error {
	return nil
}

func (f *fakeEmployeeRepo) GetEmployeeByID(ctx context.Context, employeeID int64) (*EmployeeRes, error) {
	return nil, models.NewNotFoundError("employee", employeeID)
}

func (f *fakeEmployeeRepo) GetCredentialsByEmail(ctx context.Context, email string) (*employeeCredentials, error) {
	return f.creds, nil
}

func (f *fakeEmployeeRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeEmployeeRepo) SearchEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeRes, int64, error) {
	return nil, 0, nil
}

func activeCreds(t *testing.T, password string) *employeeCredentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &employeeCredentials{
		EmployeeRes: EmployeeRes{
			ID: 11, NamaLengkap: "Dewi", Email: "dewi@corp.id",
			IsActive: true, Role: string(models.AdministratorRole),
		},
		PasswordHash: string(hash),
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		repo := &fakeEmployeeRepo{}
		service := NewEmployeeService(repo, &fakeAuth{}, nopLogger{})

		id, err := service.CreateEmployee(context.Background(), EmployeeReq{
			NamaLengkap: "Dewi", Email: "dewi@corp.id", Password: "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.Equal(t, string(models.StaffRole), repo.insertedReq.Role)
		assert.NotEqual(t, "s3cret", repo.insertedHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.insertedHash), []byte("s3cret")))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo := &fakeEmployeeRepo{emailTaken: true}
		service := NewEmployeeService(repo, &fakeAuth{}, nopLogger{})

		_, err := service.CreateEmployee(context.Background(), EmployeeReq{
			NamaLengkap: "Dewi", Email: "dewi@corp.id", Password: "s3cret",
		})
		var ce *models.ConflictError
		require.ErrorAs(t, err, &ce)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		service := NewEmployeeService(&fakeEmployeeRepo{}, &fakeAuth{}, nopLogger{})

		_, err := service.CreateEmployee(context.Background(), EmployeeReq{
			NamaLengkap: "Dewi", Email: "dewi@corp.id", Password: "s3cret", Role: "superuser",
		})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		auth := &fakeAuth{}
		repo := &fakeEmployeeRepo{creds: activeCreds(t, "s3cret")}
		service := NewEmployeeService(repo, auth, nopLogger{})

		res, err := service.Login(context.Background(), LoginReq{Email: "dewi@corp.id", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "token-ok", res.Token)
		assert.Equal(t, int64(11), auth.issuedFor)
		assert.Equal(t, string(models.AdministratorRole), auth.issuedRole)
	})

	t.Run("wrong password", func(t *testing.T) {
		service := NewEmployeeService(&fakeEmployeeRepo{creds: activeCreds(t, "s3cret")}, &fakeAuth{}, nopLogger{})

		_, err := service.Login(context.Background(), LoginReq{Email: "dewi@corp.id", Password: "nope"})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("unknown email", func(t *testing.T) {
		service := NewEmployeeService(&fakeEmployeeRepo{}, &fakeAuth{}, nopLogger{})

		_, err := service.Login(context.Background(), LoginReq{Email: "ghost@corp.id", Password: "s3cret"})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("deactivated account", func(t *testing.T) {
		creds := activeCreds(t, "s3cret")
		creds.IsActive = false
		service := NewEmployeeService(&fakeEmployeeRepo{creds: creds}, &fakeAuth{}, nopLogger{})

		_, err := service.Login(context.Background(), LoginReq{Email: "dewi@corp.id", Password: "s3cret"})
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}
