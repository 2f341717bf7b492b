package catalogservice

// Option is the row shape shared by every lookup table.
type Option struct {
	ID        int64  `db:"id" json:"id"`
	Value     string `db:"value" json:"value"`
	IsDeleted bool   `db:"is_deleted" json:"isDeleted"`
}

type OptionReq struct {
	Value string `json:"value" validate:"required"`
}

// catalogTables whitelists the slug -> table mapping; repository SQL only ever
// interpolates table names that come from this map.
var catalogTables = map[string]string{
	"ram":              "ram_options",
	"processor":        "processor_options",
	"storage-type":     "storage_type_options",
	"os":               "os_options",
	"power":            "power_options",
	"microsoft-office": "microsoft_office_options",
	"color":            "color_options",
	"brand":            "brand_options",
	"type":             "type_options",
	"graphic":          "graphic_options",
	"license":          "license_options",
	"printer-brand":    "printer_brand_options",
	"printer-type":     "printer_type_options",
	"printer-model":    "printer_model_options",
	"call-outgoing":    "call_outgoing_options",
}

func TableForCatalog(catalog string) (string, bool) {
	table, ok := catalogTables[catalog]
	return table, ok
}
