package phoneservice

import "time"

type PhoneAccountReq struct {
	UserID         int64  `json:"userId" validate:"required"`
	Extension      int    `json:"extension" validate:"required"`
	Account        int    `json:"account"`
	CodeDial       string `json:"codeDial"`
	Deposit        int64  `json:"deposit"`
	CallOutgoingID *int64 `json:"callOutgoingId"`
}

type PhoneAccountRes struct {
	ID             int64   `db:"id" json:"id"`
	UserID         int64   `db:"user_id" json:"userId"`
	NamaLengkap    string  `db:"nama_lengkap" json:"namaLengkap"`
	Extension      int     `db:"extension" json:"extension"`
	Account        int     `db:"account" json:"account"`
	CodeDial       string  `db:"code_dial" json:"codeDial"`
	Deposit        int64   `db:"deposit" json:"deposit"`
	CallOutgoingID *int64  `db:"call_outgoing_id" json:"callOutgoingId"`
	CallOutgoing   *string `db:"call_outgoing_value" json:"callOutgoing"`
}

type BillingRecordReq struct {
	CallDate time.Time `json:"callDate" validate:"required"`
	UserID   int64     `json:"userId" validate:"required"`
	Dial     string    `json:"dial"`
	Duration string    `json:"duration" validate:"required"`
	Trunk    string    `json:"trunk"`
	Pstn     string    `json:"pstn"`

	// Cost arrives the way the billing export prints it ("Rp1.500.000" or a
	// bare number) and is parsed to integer rupiah before storage.
	Cost string `json:"cost"`
}

type BillingRecordRes struct {
	ID          int64     `db:"id" json:"id"`
	CallDate    time.Time `db:"call_date" json:"callDate"`
	UserID      int64     `db:"user_id" json:"userId"`
	NamaLengkap string    `db:"nama_lengkap" json:"namaLengkap"`
	Extension   *int      `db:"extension" json:"extension"`
	Dial        string    `db:"dial" json:"dial"`
	Duration    string    `db:"duration" json:"duration"`
	Trunk       string    `db:"trunk" json:"trunk"`
	Pstn        string    `db:"pstn" json:"pstn"`
	Cost        int64     `db:"cost" json:"cost"`

	CostFormatted string `db:"-" json:"costFormatted"`
}

// CreateBillingRes carries the advisory warning raised when the selected user
// has no phone account to derive the extension from.
type CreateBillingRes struct {
	ID      int64  `json:"id"`
	Warning string `json:"warning,omitempty"`
}

type BillingListRes struct {
	Data      []BillingRecordRes `json:"data"`
	PageCount int                `json:"pageCount"`
}
