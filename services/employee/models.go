package employeeservice

type EmployeeReq struct {
	NamaLengkap  string `json:"namaLengkap" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password"`
	Departemen   string `json:"departemen"`
	Jabatan      string `json:"jabatan"`
	LokasiKantor string `json:"lokasiKantor"`
	Role         string `json:"role"`
}

type EmployeeRes struct {
	ID           int64  `db:"id" json:"id"`
	NamaLengkap  string `db:"nama_lengkap" json:"namaLengkap"`
	Email        string `db:"email" json:"email"`
	Departemen   string `db:"departemen" json:"departemen"`
	Jabatan      string `db:"jabatan" json:"jabatan"`
	LokasiKantor string `db:"lokasi_kantor" json:"lokasiKantor"`
	IsActive     bool   `db:"is_active" json:"isActive"`
	Role         string `db:"role" json:"role"`
}

type EmployeeFilter struct {
	Search string
	Limit  int
	Offset int
}

type EmployeeListRes struct {
	Data      []EmployeeRes `json:"data"`
	PageCount int           `json:"pageCount"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRes struct {
	Token    string      `json:"token"`
	Employee EmployeeRes `json:"employee"`
}
