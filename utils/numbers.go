// utils/numbers.go
package utils

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Record submissions arrive from spreadsheets and free-form inputs, so the
// numeric fields tolerate anything: a JSON number, a numeric string, null or
// garbage. Everything non-numeric normalizes to 0 instead of failing the
// whole submission.

type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = FlexNumber(coerceNumber(data))
	return nil
}

type FlexCount int

func (n *FlexCount) UnmarshalJSON(data []byte) error {
	*n = FlexCount(coerceNumber(data))
	return nil
}

func coerceNumber(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return 0
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		return number
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0
		}
		return parsed
	}

	return 0
}
