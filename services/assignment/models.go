package assignmentservice

import "time"

type AssignmentReq struct {
	AssetID                 int64      `json:"assetId" validate:"required"`
	UserID                  int64      `json:"userId" validate:"required"`
	NomorAsset              string     `json:"nomorAsset" validate:"required"`
	Catatan                 *string    `json:"catatan"`
	TanggalPeminjaman       *time.Time `json:"tanggalPeminjaman"`
	TanggalPengembalian     *time.Time `json:"tanggalPengembalian"`
	KondisiSaatPeminjaman   *string    `json:"kondisiSaatPeminjaman"`
	KondisiSaatPengembalian *string    `json:"kondisiSaatPengembalian"`
}

type AssignmentRes struct {
	ID                      int64      `db:"id" json:"id"`
	AssetID                 int64      `db:"asset_id" json:"assetId"`
	NamaAsset               string     `db:"nama_asset" json:"namaAsset"`
	Category                string     `db:"category_value" json:"category"`
	UserID                  int64      `db:"user_id" json:"userId"`
	NamaLengkap             string     `db:"nama_lengkap" json:"namaLengkap"`
	NomorAsset              string     `db:"nomor_asset" json:"nomorAsset"`
	Catatan                 *string    `db:"catatan" json:"catatan"`
	AssignedByUserID        *int64     `db:"assigned_by_user_id" json:"assignedByUserId"`
	TanggalPeminjaman       *time.Time `db:"tanggal_peminjaman" json:"tanggalPeminjaman"`
	TanggalPengembalian     *time.Time `db:"tanggal_pengembalian" json:"tanggalPengembalian"`
	KondisiSaatPeminjaman   *string    `db:"kondisi_saat_peminjaman" json:"kondisiSaatPeminjaman"`
	KondisiSaatPengembalian *string    `db:"kondisi_saat_pengembalian" json:"kondisiSaatPengembalian"`
}

type AssignmentFilter struct {
	// Group partitions the list the way the dashboard tabs do: "computer"
	// covers laptops and Intel NUCs, "printer" covers printers.
	Group  string
	Limit  int
	Offset int
}

type AssignmentListRes struct {
	Data      []AssignmentRes `json:"data"`
	PageCount int             `json:"pageCount"`
}
