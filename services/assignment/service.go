package assignmentservice

import (
	"context"
	"fmt"

	"inventaris/models"
	"inventaris/providers"
	"inventaris/utils"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req AssignmentReq, assignedBy int64) (int64, error)
	UpdateAssignment(ctx context.Context, assignmentID int64, req AssignmentReq) error
	DeleteAssignment(ctx context.Context, assignmentID int64) error
	GetAssignments(ctx context.Context, filter AssignmentFilter) (*AssignmentListRes, error)
}

type assignmentService struct {
	repo   AssignmentRepository
	db     *sqlx.DB
	logger providers.ZapLoggerProvider
}

func NewAssignmentService(repo AssignmentRepository, db *sqlx.DB, logger providers.ZapLoggerProvider) AssignmentService {
	return &assignmentService{repo: repo, db: db, logger: logger}
}

// CreateAssignment links one asset to one user. An asset can hold only one
// assignment row at a time; assigning an already-assigned asset is a conflict.
func (s *assignmentService) CreateAssignment(ctx context.Context, req AssignmentReq, assignedBy int64) (assignmentID int64, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
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

	exists, err := s.repo.AssetExists(ctx, tx, req.AssetID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, models.NewNotFoundError("asset", req.AssetID)
	}

	exists, err = s.repo.EmployeeExists(ctx, tx, req.UserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, models.NewNotFoundError("employee", req.UserID)
	}

	assigned, err := s.repo.HasAssignment(ctx, tx, req.AssetID)
	if err != nil {
		return 0, err
	}
	if assigned {
		return 0, models.NewConflictError(fmt.Sprintf("asset %d is already assigned", req.AssetID))
	}

	assignmentID, err = s.repo.InsertAssignment(ctx, tx, req, assignedBy)
	if err != nil {
		return 0, err
	}

	s.logger.GetLogger().Info("asset assigned",
		zap.Int64("asset_id", req.AssetID),
		zap.Int64("user_id", req.UserID))
	return assignmentID, nil
}

func (s *assignmentService) UpdateAssignment(ctx context.Context, assignmentID int64, req AssignmentReq) error {
	return s.repo.UpdateAssignment(ctx, assignmentID, req)
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	return s.repo.DeleteAssignment(ctx, assignmentID)
}

func (s *assignmentService) GetAssignments(ctx context.Context, filter AssignmentFilter) (*AssignmentListRes, error) {
	var categories []string
	switch filter.Group {
	case "":
		// all categories
	case "computer":
		categories = []string{models.CategoryLaptop, models.CategoryIntelNuc}
	case "printer":
		categories = []string{models.CategoryPrinter}
	default:
		return nil, models.NewValidationError("group", "must be computer or printer")
	}

	assignments, total, err := s.repo.ListAssignments(ctx, categories, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	return &AssignmentListRes{
		Data:      assignments,
		PageCount: utils.PageCount(total, filter.Limit),
	}, nil
}
