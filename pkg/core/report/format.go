// Package report turns simulation results into display-ready values.
// Nothing here feeds back into the simulation.
package report

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is shown in place of NaN or infinite values.
const NotAvailable = "n/a"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatCurrency renders v as US dollars with two decimals, e.g. "$1,234.57".
func FormatCurrency(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + groupThousands(strconv.FormatFloat(v, 'f', 2, 64))
}

// FormatLargeNumber renders v rounded to an integer with thousands separators.
func FormatLargeNumber(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}
	sign := ""
	rounded := math.Round(v)
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + groupThousands(strconv.FormatFloat(rounded, 'f', 0, 64))
}

// FormatPercent renders a value given in percentage points with one or two
// decimals: 12.5 -> "12.5%", 0.8449 -> "0.84%".
func FormatPercent(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	if s == "-0.0" {
		s = "0.0"
	}
	return groupThousands(s) + "%"
}

// FormatMultiple renders a valuation multiple, e.g. "28.1x".
func FormatMultiple(v float64) string {
	if !isFinite(v) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "x"
}

// FormatBillions renders a value held in millions as billions, e.g. 22500 -> "$22.5B".
func FormatBillions(millions float64) string {
	if !isFinite(millions) {
		return NotAvailable
	}
	return "$" + strconv.FormatFloat(millions/1000, 'f', 1, 64) + "B"
}

// groupThousands inserts commas into the integer part of a plain decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Number is a float64 that encodes as JSON null when it is NaN or infinite;
// encoding/json refuses those values outright.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if !isFinite(v) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}
