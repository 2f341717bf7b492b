package ispservice

import (
	"time"

	"inventaris/utils"
)

type IspReq struct {
	Isp            string `json:"isp" validate:"required"`
	AsNumber       string `json:"asNumber"`
	Address        string `json:"address"`
	Pop            string `json:"pop"`
	Transmisi      string `json:"transmisi"`
	ProductService string `json:"productService"`
	IpPublic       string `json:"ipPublic"`
	Sla            string `json:"sla"`
	PicNoc         string `json:"picNoc"`
	HpNoc          string `json:"hpNoc"`
	Prtg           string `json:"prtg"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

type IspRes struct {
	ID             int64  `db:"id" json:"id"`
	Isp            string `db:"isp" json:"isp"`
	AsNumber       string `db:"as_number" json:"asNumber"`
	Address        string `db:"address" json:"address"`
	Pop            string `db:"pop" json:"pop"`
	Transmisi      string `db:"transmisi" json:"transmisi"`
	ProductService string `db:"product_service" json:"productService"`
	IpPublic       string `db:"ip_public" json:"ipPublic"`
	Sla            string `db:"sla" json:"sla"`
	PicNoc         string `db:"pic_noc" json:"picNoc"`
	HpNoc          string `db:"hp_noc" json:"hpNoc"`
	Prtg           string `db:"prtg" json:"prtg"`
	Username       string `db:"username" json:"username"`
	Password       string `db:"password" json:"password"`
}

type IspReportReq struct {
	ReportDate    time.Time `json:"reportDate" validate:"required"`
	Sbu           string    `json:"sbu" validate:"required"`
	IspID         int64     `json:"ispId" validate:"required"`
	Bandwidth     string    `json:"bandwidth" validate:"required"`
	DownloadSpeed string    `json:"downloadSpeed"`
	UploadSpeed   string    `json:"uploadSpeed"`
	Link          string    `json:"link"`
}

type IspReportRes struct {
	ID            int64     `db:"id" json:"id"`
	ReportDate    time.Time `db:"report_date" json:"reportDate"`
	Sbu           string    `db:"sbu" json:"sbu"`
	IspID         int64     `db:"isp_id" json:"ispId"`
	IspName       string    `db:"isp_name" json:"ispName"`
	Bandwidth     string    `db:"bandwidth" json:"bandwidth"`
	DownloadSpeed string    `db:"download_speed" json:"downloadSpeed"`
	UploadSpeed   string    `db:"upload_speed" json:"uploadSpeed"`
	Link          string    `db:"link" json:"link"`
}

type ProblemReq struct {
	Sbu        string     `json:"sbu" validate:"required"`
	IspID      int64      `json:"ispId" validate:"required"`
	Pic        string     `json:"pic"`
	DateDown   *time.Time `json:"dateDown"`
	DateDoneUp *time.Time `json:"dateDoneUp"`
	Issue      string     `json:"issue"`
	Trouble    string     `json:"trouble"`
	Solved     bool       `json:"solved"`
}

type ProblemRes struct {
	ID           int64      `db:"id" json:"id"`
	TicketNumber string     `db:"ticket_number" json:"ticketNumber"`
	Sbu          string     `db:"sbu" json:"sbu"`
	IspID        int64      `db:"isp_id" json:"ispId"`
	IspName      string     `db:"isp_name" json:"ispName"`
	Pic          string     `db:"pic" json:"pic"`
	DateDown     *time.Time `db:"date_down" json:"dateDown"`
	DateDoneUp   *time.Time `db:"date_done_up" json:"dateDoneUp"`
	Issue        string     `db:"issue" json:"issue"`
	Trouble      string     `db:"trouble" json:"trouble"`
	Solved       bool       `db:"solved" json:"solved"`

	// Sla is derived from the two dates for display, never stored.
	Sla *utils.SlaParts `json:"sla,omitempty"`
}
