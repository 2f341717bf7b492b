package ispservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventaris/models"

	"github.com/jmoiron/sqlx"
)

type IspRepository interface {
	InsertIsp(ctx context.Context, req IspReq) (int64, error)
	UpdateIsp(ctx context.Context, ispID int64, req IspReq) error
	DeleteIsp(ctx context.Context, ispID int64) error
	GetIspByID(ctx context.Context, ispID int64) (*IspRes, error)
	ListIsps(ctx context.Context) ([]IspRes, error)

	InsertIspReport(ctx context.Context, req IspReportReq) (int64, error)
	UpdateIspReport(ctx context.Context, reportID int64, req IspReportReq) error
	DeleteIspReport(ctx context.Context, reportID int64) error
	ListIspReports(ctx context.Context) ([]IspReportRes, error)

	InsertProblem(ctx context.Context, req ProblemReq, ticketPrefix string) (int64, string, error)
	UpdateProblem(ctx context.Context, problemID int64, req ProblemReq) error
	DeleteProblem(ctx context.Context, problemID int64) error
	ListProblems(ctx context.Context) ([]ProblemRes, error)
}

type PostgresIspRepository struct {
	DB *sqlx.DB
}

func NewIspRepository(db *sqlx.DB) IspRepository {
	return &PostgresIspRepository{DB: db}
}

func (r *PostgresIspRepository) InsertIsp(ctx context.Context, req IspReq) (int64, error) {
	var ispID int64
	err := r.DB.GetContext(ctx, &ispID, `
		INSERT INTO isps (isp, as_number, address, pop, transmisi, product_service,
		                  ip_public, sla, pic_noc, hp_noc, prtg, username, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		req.Isp, req.AsNumber, req.Address, req.Pop, req.Transmisi, req.ProductService,
		req.IpPublic, req.Sla, req.PicNoc, req.HpNoc, req.Prtg, req.Username, req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to insert isp: %w", err)
	}
	return ispID, nil
}

func (r *PostgresIspRepository) UpdateIsp(ctx context.Context, ispID int64, req IspReq) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE isps
		SET isp = $1, as_number = $2, address = $3, pop = $4, transmisi = $5,
		    product_service = $6, ip_public = $7, sla = $8, pic_noc = $9,
		    hp_noc = $10, prtg = $11, username = $12, password = $13
		WHERE id = $14`,
		req.Isp, req.AsNumber, req.Address, req.Pop, req.Transmisi, req.ProductService,
		req.IpPublic, req.Sla, req.PicNoc, req.HpNoc, req.Prtg, req.Username, req.Password, ispID)
	if err != nil {
		return fmt.Errorf("failed to update isp: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("isp", ispID)
	}
	return nil
}

func (r *PostgresIspRepository) DeleteIsp(ctx context.Context, ispID int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM isps WHERE id = $1`, ispID)
	if err != nil {
		return fmt.Errorf("failed to delete isp: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("isp", ispID)
	}
	return nil
}

func (r *PostgresIspRepository) GetIspByID(ctx context.Context, ispID int64) (*IspRes, error) {
	var isp IspRes
	err := r.DB.GetContext(ctx, &isp, `
		SELECT id, isp, as_number, address, pop, transmisi, product_service,
		       ip_public, sla, pic_noc, hp_noc, prtg, username, password
		FROM isps WHERE id = $1
	`, ispID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("isp", ispID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch isp: %w", err)
	}
	return &isp, nil
}

func (r *PostgresIspRepository) ListIsps(ctx context.Context) ([]IspRes, error) {
	isps := make([]IspRes, 0)
	err := r.DB.SelectContext(ctx, &isps, `
		SELECT id, isp, as_number, address, pop, transmisi, product_service,
		       ip_public, sla, pic_noc, hp_noc, prtg, username, password
		FROM isps ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list isps: %w", err)
	}
	return isps, nil
}

func (r *PostgresIspRepository) InsertIspReport(ctx context.Context, req IspReportReq) (int64, error) {
	var reportID int64
	err := r.DB.GetContext(ctx, &reportID, `
		INSERT INTO isp_reports (report_date, sbu, isp_id, bandwidth, download_speed, upload_speed, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		req.ReportDate, req.Sbu, req.IspID, req.Bandwidth, req.DownloadSpeed, req.UploadSpeed, req.Link)
	if err != nil {
		return 0, fmt.Errorf("failed to insert isp report: %w", err)
	}
	return reportID, nil
}

func (r *PostgresIspRepository) UpdateIspReport(ctx context.Context, reportID int64, req IspReportReq) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE isp_reports
		SET report_date = $1, sbu = $2, isp_id = $3, bandwidth = $4,
		    download_speed = $5, upload_speed = $6, link = $7
		WHERE id = $8`,
		req.ReportDate, req.Sbu, req.IspID, req.Bandwidth,
		req.DownloadSpeed, req.UploadSpeed, req.Link, reportID)
	if err != nil {
		return fmt.Errorf("failed to update isp report: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("isp report", reportID)
	}
	return nil
}

func (r *PostgresIspRepository) DeleteIspReport(ctx context.Context, reportID int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM isp_reports WHERE id = $1`, reportID)
	if err != nil {
		return fmt.Errorf("failed to delete isp report: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("isp report", reportID)
	}
	return nil
}

func (r *PostgresIspRepository) ListIspReports(ctx context.Context) ([]IspReportRes, error) {
	reports := make([]IspReportRes, 0)
	err := r.DB.SelectContext(ctx, &reports, `
		SELECT ir.id, ir.report_date, ir.sbu, ir.isp_id, i.isp AS isp_name,
		       ir.bandwidth, ir.download_speed, ir.upload_speed, ir.link
		FROM isp_reports ir
		JOIN isps i ON i.id = ir.isp_id
		ORDER BY ir.report_date DESC, ir.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list isp reports: %w", err)
	}
	return reports, nil
}

// InsertProblem draws the next ticket number from the global sequence inside
// the insert itself, so concurrent creates can never collide or reuse a number.
func (r *PostgresIspRepository) InsertProblem(ctx context.Context, req ProblemReq, ticketPrefix string) (int64, string, error) {
	var row struct {
		ID           int64  `db:"id"`
		TicketNumber string `db:"ticket_number"`
	}
	err := r.DB.GetContext(ctx, &row, `
		INSERT INTO problem_sequences (ticket_number, sbu, isp_id, pic, date_down, date_done_up, issue, trouble, solved)
		VALUES ($1 || '/' || lpad(nextval('problem_ticket_seq')::text, 4, '0'),
		        $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, ticket_number`,
		ticketPrefix, req.Sbu, req.IspID, req.Pic, req.DateDown, req.DateDoneUp,
		req.Issue, req.Trouble, req.Solved)
	if err != nil {
		return 0, "", fmt.Errorf("failed to insert problem: %w", err)
	}
	return row.ID, row.TicketNumber, nil
}

// UpdateProblem never touches ticket_number; it is assigned once at creation.
func (r *PostgresIspRepository) UpdateProblem(ctx context.Context, problemID int64, req ProblemReq) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE problem_sequences
		SET sbu = $1, isp_id = $2, pic = $3, date_down = $4, date_done_up = $5,
		    issue = $6, trouble = $7, solved = $8
		WHERE id = $9`,
		req.Sbu, req.IspID, req.Pic, req.DateDown, req.DateDoneUp,
		req.Issue, req.Trouble, req.Solved, problemID)
	if err != nil {
		return fmt.Errorf("failed to update problem: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("problem", problemID)
	}
	return nil
}

func (r *PostgresIspRepository) DeleteProblem(ctx context.Context, problemID int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM problem_sequences WHERE id = $1`, problemID)
	if err != nil {
		return fmt.Errorf("failed to delete problem: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.NewNotFoundError("problem", problemID)
	}
	return nil
}

func (r *PostgresIspRepository) ListProblems(ctx context.Context) ([]ProblemRes, error) {
	problems := make([]ProblemRes, 0)
	err := r.DB.SelectContext(ctx, &problems, `
		SELECT p.id, p.ticket_number, p.sbu, p.isp_id, i.isp AS isp_name,
		       p.pic, p.date_down, p.date_done_up, p.issue, p.trouble, p.solved
		FROM problem_sequences p
		JOIN isps i ON i.id = p.isp_id
		ORDER BY p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	return problems, nil
}
