package models

// Asset status values are stored verbatim, including the space in
// "NEED REPARATION".
const (
	StatusGood           = "GOOD"
	StatusNeedReparation = "NEED REPARATION"
	StatusBroken         = "BROKEN"
	StatusMissing        = "MISSING"
	StatusSell           = "SELL"
)

func IsAssetStatusValid(status string) bool {
	return status == StatusGood || status == StatusNeedReparation ||
		status == StatusBroken || status == StatusMissing || status == StatusSell
}

// Category values seeded by the init migration. The asset's category decides
// which specification table owns its one-to-one extension row.
const (
	CategoryLaptop   = "LAPTOP"
	CategoryIntelNuc = "INTEL_NUC"
	CategoryPrinter  = "PRINTER"
)

const (
	BandwidthBroadband = "BROADBAND"
	BandwidthDedicated = "DEDICATED"
)

func IsBandwidthValid(bandwidth string) bool {
	return bandwidth == BandwidthBroadband || bandwidth == BandwidthDedicated
}
