package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MonthlyBreakdown holds the twelve months of a year, January first. It
// encodes as an object keyed by month number, "1" through "12".
type MonthlyBreakdown [12]MonthBreakdown

// MarshalJSON writes the months in calendar order.
func (b MonthlyBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, month := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(i + 1)))
		buf.WriteByte(':')
		entry, err := json.Marshal(month)
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object produced by MarshalJSON. Missing months are
// left zero; keys outside 1..12 are rejected.
func (b *MonthlyBreakdown) UnmarshalJSON(data []byte) error {
	var raw map[string]MonthBreakdown
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("monthly breakdown: %w", err)
	}

	var out MonthlyBreakdown
	for key, month := range raw {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > 12 {
			return fmt.Errorf("monthly breakdown: invalid month key %q", key)
		}
		out[n-1] = month
	}
	*b = out
	return nil
}
