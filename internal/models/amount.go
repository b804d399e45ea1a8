package models

import (
	"bytes"
	"strconv"
	"strings"
)

// Amount is a best-effort numeric form input. Ledger entries come from
// human-facing forms, so values arrive as JSON numbers or numeric strings;
// anything unparseable coerces to zero rather than failing the request.
type Amount float64

// UnmarshalJSON accepts numbers, quoted numbers, null and garbage; only
// the first two produce a non-zero value.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

// Float64 returns the coerced value.
func (a Amount) Float64() float64 {
	return float64(a)
}
