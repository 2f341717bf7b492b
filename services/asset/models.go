package assetservice

import "time"

type ComputerSpecsReq struct {
	BrandOptionID           *int64 `json:"brandOptionId"`
	ProcessorOptionID       *int64 `json:"processorOptionId"`
	RamOptionID             *int64 `json:"ramOptionId"`
	StorageTypeOptionID     *int64 `json:"storageTypeOptionId"`
	OsOptionID              *int64 `json:"osOptionId"`
	PowerOptionID           *int64 `json:"powerOptionId"`
	MicrosoftOfficeOptionID *int64 `json:"microsoftOfficeOptionId"`
	ColorOptionID           *int64 `json:"colorOptionId"`
	GraphicOptionID         *int64 `json:"graphicOptionId"`
	LicenseOptionID         *int64 `json:"licenseOptionId"`
	TypeOptionID            *int64 `json:"typeOptionId"`
	MacWlan                 string `json:"macWlan"`
	MacLan                  string `json:"macLan"`
	LicenseKey              string `json:"licenseKey"`
}

type PrinterSpecsReq struct {
	PrinterBrandOptionID *int64 `json:"printerBrandOptionId"`
	PrinterTypeOptionID  *int64 `json:"printerTypeOptionId"`
	PrinterModelOptionID *int64 `json:"printerModelOptionId"`
}

type OfficeAccountReq struct {
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	IsActive      bool       `json:"isActive"`
}

type AssetReq struct {
	NamaAsset        string     `json:"namaAsset" validate:"required"`
	NomorSeri        string     `json:"nomorSeri" validate:"required"`
	CategoryID       int64      `json:"categoryId" validate:"required"`
	TanggalPembelian *time.Time `json:"tanggalPembelian"`
	TanggalGaransi   *time.Time `json:"tanggalGaransi"`
	StatusAsset      string     `json:"statusAsset" validate:"required"`

	LaptopSpecs   *ComputerSpecsReq `json:"laptopSpecs,omitempty"`
	IntelNucSpecs *ComputerSpecsReq `json:"intelNucSpecs,omitempty"`
	PrinterSpecs  *PrinterSpecsReq  `json:"printerSpecs,omitempty"`

	HasOfficeAccount bool              `json:"hasOfficeAccount"`
	OfficeAccount    *OfficeAccountReq `json:"officeAccount,omitempty"`
}

type ComputerSpecsRes struct {
	BrandOptionID           *int64  `db:"brand_option_id" json:"brandOptionId"`
	Brand                   *string `db:"brand_value" json:"brand"`
	ProcessorOptionID       *int64  `db:"processor_option_id" json:"processorOptionId"`
	Processor               *string `db:"processor_value" json:"processor"`
	RamOptionID             *int64  `db:"ram_option_id" json:"ramOptionId"`
	Ram                     *string `db:"ram_value" json:"ram"`
	StorageTypeOptionID     *int64  `db:"storage_type_option_id" json:"storageTypeOptionId"`
	StorageType             *string `db:"storage_type_value" json:"storageType"`
	OsOptionID              *int64  `db:"os_option_id" json:"osOptionId"`
	Os                      *string `db:"os_value" json:"os"`
	PowerOptionID           *int64  `db:"power_option_id" json:"powerOptionId"`
	Power                   *string `db:"power_value" json:"power"`
	MicrosoftOfficeOptionID *int64  `db:"microsoft_office_option_id" json:"microsoftOfficeOptionId"`
	MicrosoftOffice         *string `db:"microsoft_office_value" json:"microsoftOffice"`
	ColorOptionID           *int64  `db:"color_option_id" json:"colorOptionId"`
	Color                   *string `db:"color_value" json:"color"`
	GraphicOptionID         *int64  `db:"graphic_option_id" json:"graphicOptionId"`
	Graphic                 *string `db:"graphic_value" json:"graphic"`
	LicenseOptionID         *int64  `db:"license_option_id" json:"licenseOptionId"`
	License                 *string `db:"license_value" json:"license"`
	TypeOptionID            *int64  `db:"type_option_id" json:"typeOptionId"`
	Type                    *string `db:"type_value" json:"type"`
	MacWlan                 string  `db:"mac_wlan" json:"macWlan"`
	MacLan                  string  `db:"mac_lan" json:"macLan"`
	LicenseKey              string  `db:"license_key" json:"licenseKey"`
}

type PrinterSpecsRes struct {
	PrinterBrandOptionID *int64  `db:"printer_brand_option_id" json:"printerBrandOptionId"`
	PrinterBrand         *string `db:"printer_brand_value" json:"printerBrand"`
	PrinterTypeOptionID  *int64  `db:"printer_type_option_id" json:"printerTypeOptionId"`
	PrinterType          *string `db:"printer_type_value" json:"printerType"`
	PrinterModelOptionID *int64  `db:"printer_model_option_id" json:"printerModelOptionId"`
	PrinterModel         *string `db:"printer_model_value" json:"printerModel"`
}

type OfficeAccountRes struct {
	Email         string     `db:"email" json:"email"`
	Password      string     `db:"password" json:"password"`
	LicenseExpiry *time.Time `db:"license_expiry" json:"licenseExpiry"`
	IsActive      bool       `db:"is_active" json:"isActive"`
}

// Specification is the tagged union over the three spec tables: exactly the
// variant matching the asset's category is populated.
type Specification struct {
	Category string            `json:"category"`
	Laptop   *ComputerSpecsRes `json:"laptop,omitempty"`
	IntelNuc *ComputerSpecsRes `json:"intelNuc,omitempty"`
	Printer  *PrinterSpecsRes  `json:"printer,omitempty"`

	OfficeAccount *OfficeAccountRes `json:"officeAccount,omitempty"`
}

type AssetRes struct {
	ID               int64      `db:"id" json:"id"`
	NamaAsset        string     `db:"nama_asset" json:"namaAsset"`
	NomorSeri        string     `db:"nomor_seri" json:"nomorSeri"`
	CategoryID       int64      `db:"category_id" json:"categoryId"`
	Category         string     `db:"category_value" json:"category"`
	TanggalPembelian *time.Time `db:"tanggal_pembelian" json:"tanggalPembelian"`
	TanggalGaransi   *time.Time `db:"tanggal_garansi" json:"tanggalGaransi"`
	StatusAsset      string     `db:"status_asset" json:"statusAsset"`

	Specification *Specification `json:"specification,omitempty"`
}

type AssetFilter struct {
	NamaAsset  string
	NomorSeri  string
	Status     string
	CategoryID int64
	Limit      int
	Offset     int
}

type AssetListRes struct {
	Data      []AssetRes `json:"data"`
	PageCount int        `json:"pageCount"`
}
