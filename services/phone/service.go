package phoneservice

import (
	"context"
	"fmt"

	"inventaris/models"
	"inventaris/providers"
	"inventaris/utils"

	"go.uber.org/zap"
)

type PhoneService interface {
	CreatePhoneAccount(ctx context.Context, req PhoneAccountReq) (int64, error)
	UpdatePhoneAccount(ctx context.Context, accountID int64, req PhoneAccountReq) error
	DeletePhoneAccount(ctx context.Context, accountID int64) error
	GetPhoneAccounts(ctx context.Context) ([]PhoneAccountRes, error)
	GetPhoneAccountByUserID(ctx context.Context, userID int64) (*PhoneAccountRes, error)

	CreateBillingRecord(ctx context.Context, req BillingRecordReq) (*CreateBillingRes, error)
	DeleteBillingRecord(ctx context.Context, recordID int64) error
	GetBillingRecords(ctx context.Context, userID int64, limit, offset int) (*BillingListRes, error)
}

type phoneService struct {
	repo                PhoneRepository
	logger              providers.ZapLoggerProvider
	defaultCallOutgoing string
}

func NewPhoneService(repo PhoneRepository, logger providers.ZapLoggerProvider, defaultCallOutgoing string) PhoneService {
	return &phoneService{repo: repo, logger: logger, defaultCallOutgoing: defaultCallOutgoing}
}

func (s *phoneService) CreatePhoneAccount(ctx context.Context, req PhoneAccountReq) (int64, error) {
	exists, err := s.repo.EmployeeExists(ctx, req.UserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, models.NewNotFoundError("employee", req.UserID)
	}

	existing, err := s.repo.GetPhoneAccountByUserID(ctx, req.UserID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, models.NewConflictError(fmt.Sprintf("user %d already has a phone account", req.UserID))
	}

	if req.CallOutgoingID == nil {
		// preselect the configured default rate when none is chosen
		defaultID, err := s.repo.FindCallOutgoingIDByValue(ctx, s.defaultCallOutgoing)
		if err != nil {
			return 0, err
		}
		req.CallOutgoingID = defaultID
	} else {
		ok, err := s.repo.CallOutgoingExists(ctx, *req.CallOutgoingID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, models.NewValidationError("callOutgoingId", fmt.Sprintf("option %d does not exist", *req.CallOutgoingID))
		}
	}

	return s.repo.InsertPhoneAccount(ctx, req)
}

func (s *phoneService) UpdatePhoneAccount(ctx context.Context, accountID int64, req PhoneAccountReq) error {
	if req.CallOutgoingID != nil {
		ok, err := s.repo.CallOutgoingExists(ctx, *req.CallOutgoingID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewValidationError("callOutgoingId", fmt.Sprintf("option %d does not exist", *req.CallOutgoingID))
		}
	}
	return s.repo.UpdatePhoneAccount(ctx, accountID, req)
}

func (s *phoneService) DeletePhoneAccount(ctx context.Context, accountID int64) error {
	return s.repo.DeletePhoneAccount(ctx, accountID)
}

func (s *phoneService) GetPhoneAccounts(ctx context.Context) ([]PhoneAccountRes, error) {
	return s.repo.ListPhoneAccounts(ctx)
}

func (s *phoneService) GetPhoneAccountByUserID(ctx context.Context, userID int64) (*PhoneAccountRes, error) {
	account, err := s.repo.GetPhoneAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, models.NewNotFoundError("phone account for user", userID)
	}
	return account, nil
}

// CreateBillingRecord derives the extension from the user's phone account;
// whatever the client sent for it is ignored. A user without a phone account
// gets an advisory warning, not a rejection.
func (s *phoneService) CreateBillingRecord(ctx context.Context, req BillingRecordReq) (*CreateBillingRes, error) {
	exists, err := s.repo.EmployeeExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("employee", req.UserID)
	}

	req.Duration = utils.FormatDuration(req.Duration)
	if !utils.IsDurationValid(req.Duration) {
		return nil, models.NewValidationError("duration", "must match H:MM:SS")
	}

	var cost int64
	if req.Cost != "" {
		cost, err = utils.ParseRupiah(req.Cost)
		if err != nil {
			return nil, models.NewValidationError("cost", "must be a rupiah amount")
		}
	}

	var extension *int
	var warning string
	account, err := s.repo.GetPhoneAccountByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		extension = &account.Extension
	} else {
		warning = fmt.Sprintf("user %d has no phone account; extension left blank", req.UserID)
		s.logger.GetLogger().Warn("billing record without phone account", zap.Int64("user_id", req.UserID))
	}

	recordID, err := s.repo.InsertBillingRecord(ctx, req, extension, cost)
	if err != nil {
		return nil, err
	}
	return &CreateBillingRes{ID: recordID, Warning: warning}, nil
}

func (s *phoneService) DeleteBillingRecord(ctx context.Context, recordID int64) error {
	return s.repo.DeleteBillingRecord(ctx, recordID)
}

func (s *phoneService) GetBillingRecords(ctx context.Context, userID int64, limit, offset int) (*BillingListRes, error) {
	records, total, err := s.repo.ListBillingRecords(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].CostFormatted = utils.FormatRupiah(records[i].Cost)
	}
	return &BillingListRes{
		Data:      records,
		PageCount: utils.PageCount(total, limit),
	}, nil
}
