package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	macMaxLen        = 17 // 6 octets, colon separated
	licenseKeyMaxLen = 29 // 5 groups of 5, dash separated
)

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// NormalizeMac strips everything that is not a hex digit, uppercases, and
// re-inserts a colon every two characters: "aa11bb22cc33" -> "AA:11:BB:22:CC:33".
// Output is truncated to six octets. Idempotent.
func NormalizeMac(s string) string {
	var hex strings.Builder
	for i := 0; i < len(s); i++ {
		if isHexDigit(s[i]) {
			hex.WriteByte(s[i])
		}
	}
	cleaned := strings.ToUpper(hex.String())
	if len(cleaned) > 12 {
		cleaned = cleaned[:12]
	}
	var out strings.Builder
	for i := 0; i < len(cleaned); i += 2 {
		if i > 0 {
			out.WriteByte(':')
		}
		end := i + 2
		if end > len(cleaned) {
			end = len(cleaned)
		}
		out.WriteString(cleaned[i:end])
	}
	return out.String()
}

var macPattern = regexp.MustCompile(`^[0-9A-F]{2}(:[0-9A-F]{2}){5}$`)

func IsMacValid(s string) bool {
	return macPattern.MatchString(s)
}

// NormalizeLicenseKey strips non-alphanumeric characters and groups the rest
// into 5-character segments separated by dashes, at most five groups.
func NormalizeLicenseKey(s string) string {
	var clean strings.Builder
	for i := 0; i < len(s); i++ {
		if isAlphanumeric(s[i]) {
			clean.WriteByte(s[i])
		}
	}
	key := clean.String()
	if len(key) > 25 {
		key = key[:25]
	}
	var out strings.Builder
	for i := 0; i < len(key); i += 5 {
		if i > 0 {
			out.WriteByte('-')
		}
		end := i + 5
		if end > len(key) {
			end = len(key)
		}
		out.WriteString(key[i:end])
	}
	if out.Len() > licenseKeyMaxLen {
		return out.String()[:licenseKeyMaxLen]
	}
	return out.String()
}

var durationPattern = regexp.MustCompile(`^\d{1,2}:[0-5]\d:[0-5]\d$`)

func IsDurationValid(s string) bool {
	return durationPattern.MatchString(s)
}

// FormatDuration right-aligns the digits of the input into H:MM:SS, clamping
// minutes and seconds to [0,59]. "= 1234" -> "0:12:34".
func FormatDuration(s string) string {
	var digits strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits.WriteByte(s[i])
		}
	}
	d := digits.String()
	if len(d) > 6 {
		d = d[len(d)-6:]
	}
	for len(d) < 6 {
		d = "0" + d
	}
	hours, _ := strconv.Atoi(d[:2])
	minutes, _ := strconv.Atoi(d[2:4])
	seconds, _ := strconv.Atoi(d[4:6])
	if minutes > 59 {
		minutes = 59
	}
	if seconds > 59 {
		seconds = 59
	}
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// FormatRupiah renders a non-negative integer amount with dot thousand
// separators and no decimals: 1500000 -> "Rp1.500.000".
func FormatRupiah(n int64) string {
	if n < 0 {
		n = 0
	}
	digits := strconv.FormatInt(n, 10)
	var out strings.Builder
	out.WriteString("Rp")
	lead := len(digits) % 3
	if lead > 0 {
		out.WriteString(digits[:lead])
		if len(digits) > lead {
			out.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		if i > lead {
			out.WriteByte('.')
		}
		out.WriteString(digits[i : i+3])
	}
	return out.String()
}

// ParseRupiah strips everything that is not a digit and parses the remainder.
func ParseRupiah(s string) (int64, error) {
	var digits strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits.WriteByte(s[i])
		}
	}
	if digits.Len() == 0 {
		return 0, errors.New("no digits in amount")
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse amount")
	}
	return n, nil
}

type SlaParts struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// SlaBreakdown decomposes the whole seconds between two instants. Derived for
// display only, never persisted.
func SlaBreakdown(start, end time.Time) SlaParts {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	total := int64(diff.Seconds())
	return SlaParts{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}
