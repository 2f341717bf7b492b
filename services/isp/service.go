package ispservice

import (
	"context"
	"fmt"

	"inventaris/models"
	"inventaris/providers"
	"inventaris/utils"

	"go.uber.org/zap"
)

type IspService interface {
	CreateIsp(ctx context.Context, req IspReq) (int64, error)
	UpdateIsp(ctx context.Context, ispID int64, req IspReq) error
	DeleteIsp(ctx context.Context, ispID int64) error
	GetIsps(ctx context.Context) ([]IspRes, error)

	CreateIspReport(ctx context.Context, req IspReportReq) (int64, error)
	UpdateIspReport(ctx context.Context, reportID int64, req IspReportReq) error
	DeleteIspReport(ctx context.Context, reportID int64) error
	GetIspReports(ctx context.Context) ([]IspReportRes, error)

	CreateProblem(ctx context.Context, req ProblemReq) (int64, string, error)
	UpdateProblem(ctx context.Context, problemID int64, req ProblemReq) error
	DeleteProblem(ctx context.Context, problemID int64) error
	GetProblems(ctx context.Context) ([]ProblemRes, error)
}

type ispService struct {
	repo         IspRepository
	logger       providers.ZapLoggerProvider
	ticketPrefix string
}

func NewIspService(repo IspRepository, logger providers.ZapLoggerProvider, ticketPrefix string) IspService {
	return &ispService{repo: repo, logger: logger, ticketPrefix: ticketPrefix}
}

func (s *ispService) CreateIsp(ctx context.Context, req IspReq) (int64, error) {
	return s.repo.InsertIsp(ctx, req)
}

func (s *ispService) UpdateIsp(ctx context.Context, ispID int64, req IspReq) error {
	return s.repo.UpdateIsp(ctx, ispID, req)
}

func (s *ispService) DeleteIsp(ctx context.Context, ispID int64) error {
	return s.repo.DeleteIsp(ctx, ispID)
}

func (s *ispService) GetIsps(ctx context.Context) ([]IspRes, error) {
	return s.repo.ListIsps(ctx)
}

func (s *ispService) CreateIspReport(ctx context.Context, req IspReportReq) (int64, error) {
	if err := s.validateReport(ctx, req); err != nil {
		return 0, err
	}
	return s.repo.InsertIspReport(ctx, req)
}

func (s *ispService) UpdateIspReport(ctx context.Context, reportID int64, req IspReportReq) error {
	if err := s.validateReport(ctx, req); err != nil {
		return err
	}
	return s.repo.UpdateIspReport(ctx, reportID, req)
}

func (s *ispService) validateReport(ctx context.Context, req IspReportReq) error {
	if !models.IsBandwidthValid(req.Bandwidth) {
		return models.NewValidationError("bandwidth", fmt.Sprintf("%q is not a valid bandwidth type", req.Bandwidth))
	}
	if _, err := s.repo.GetIspByID(ctx, req.IspID); err != nil {
		return err
	}
	return nil
}

func (s *ispService) DeleteIspReport(ctx context.Context, reportID int64) error {
	return s.repo.DeleteIspReport(ctx, reportID)
}

func (s *ispService) GetIspReports(ctx context.Context) ([]IspReportRes, error) {
	return s.repo.ListIspReports(ctx)
}

// CreateProblem fills the PIC from the ISP's NOC contact when the caller left
// it blank, then lets the database assign the ticket number.
func (s *ispService) CreateProblem(ctx context.Context, req ProblemReq) (int64, string, error) {
	isp, err := s.repo.GetIspByID(ctx, req.IspID)
	if err != nil {
		return 0, "", err
	}
	if req.Pic == "" {
		req.Pic = isp.HpNoc
	}

	problemID, ticketNumber, err := s.repo.InsertProblem(ctx, req, s.ticketPrefix)
	if err != nil {
		return 0, "", err
	}
	s.logger.GetLogger().Info("problem ticket opened",
		zap.Int64("problem_id", problemID),
		zap.String("ticket_number", ticketNumber))
	return problemID, ticketNumber, nil
}

func (s *ispService) UpdateProblem(ctx context.Context, problemID int64, req ProblemReq) error {
	isp, err := s.repo.GetIspByID(ctx, req.IspID)
	if err != nil {
		return err
	}
	if req.Pic == "" {
		req.Pic = isp.HpNoc
	}
	return s.repo.UpdateProblem(ctx, problemID, req)
}

func (s *ispService) DeleteProblem(ctx context.Context, problemID int64) error {
	return s.repo.DeleteProblem(ctx, problemID)
}

func (s *ispService) GetProblems(ctx context.Context) ([]ProblemRes, error) {
	problems, err := s.repo.ListProblems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range problems {
		if problems[i].DateDown != nil && problems[i].DateDoneUp != nil {
			sla := utils.SlaBreakdown(*problems[i].DateDown, *problems[i].DateDoneUp)
			problems[i].Sla = &sla
		}
	}
	return problems, nil
}
