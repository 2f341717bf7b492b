package employeeservice

import (
	"context"
	"fmt"

	"inventaris/models"
	"inventaris/providers"
	"inventaris/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req EmployeeReq) (int64, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req EmployeeReq) error
	DeactivateEmployee(ctx context.Context, employeeID int64) error
	GetEmployeeByID(ctx context.Context, employeeID int64) (*EmployeeRes, error)
	GetEmployees(ctx context.Context, filter EmployeeFilter) (*EmployeeListRes, error)
	Login(ctx context.Context, req LoginReq) (*LoginRes, error)
}

type employeeService struct {
	repo   EmployeeRepository
	auth   providers.AuthMiddlewareService
	logger providers.ZapLoggerProvider
}

func NewEmployeeService(repo EmployeeRepository, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) EmployeeService {
	return &employeeService{repo: repo, auth: auth, logger: logger}
}

func normalizeRole(role string) (string, error) {
	switch role {
	case "":
		return string(models.StaffRole), nil
	case string(models.AdministratorRole), string(models.StaffRole):
		return role, nil
	default:
		return "", models.NewValidationError("role", fmt.Sprintf("%q is not a valid role", role))
	}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req EmployeeReq) (int64, error) {
	role, err := normalizeRole(req.Role)
	if err != nil {
		return 0, err
	}
	req.Role = role

	if req.Password == "" {
		return 0, models.NewValidationError("password", "is required")
	}

	taken, err := s.repo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, models.NewConflictError(fmt.Sprintf("email %s is already registered", req.Email))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	employeeID, err := s.repo.InsertEmployee(ctx, req, string(hash))
	if err != nil {
		return 0, err
	}
	s.logger.GetLogger().Info("employee registered",
		zap.Int64("employee_id", employeeID),
		zap.String("role", req.Role))
	return employeeID, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req EmployeeReq) error {
	role, err := normalizeRole(req.Role)
	if err != nil {
		return err
	}
	req.Role = role

	taken, err := s.repo.EmailTaken(ctx, req.Email, employeeID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewConflictError(fmt.Sprintf("email %s is already registered", req.Email))
	}
	return s.repo.UpdateEmployee(ctx, employeeID, req)
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID int64) error {
	return s.repo.DeactivateEmployee(ctx, employeeID)
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*EmployeeRes, error) {
	return s.repo.GetEmployeeByID(ctx, employeeID)
}

func (s *employeeService) GetEmployees(ctx context.Context, filter EmployeeFilter) (*EmployeeListRes, error) {
	employees, total, err := s.repo.SearchEmployees(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &EmployeeListRes{
		Data:      employees,
		PageCount: utils.PageCount(total, filter.Limit),
	}, nil
}

// Login deliberately reports the same validation error for an unknown email,
// a deactivated account, and a wrong password.
func (s *employeeService) Login(ctx context.Context, req LoginReq) (*LoginRes, error) {
	creds, err := s.repo.GetCredentialsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if creds == nil || !creds.IsActive {
		return nil, models.NewValidationError("email", "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.NewValidationError("email", "invalid credentials")
	}

	token, err := s.auth.GenerateJWT(creds.ID, creds.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.logger.GetLogger().Info("employee logged in", zap.Int64("employee_id", creds.ID))
	return &LoginRes{Token: token, Employee: creds.EmployeeRes}, nil
}
