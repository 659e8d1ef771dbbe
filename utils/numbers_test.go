package utils

import (
	"encoding/json"
	"testing"
)

func TestFlexNumberCoercion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want float64
	}{
		{`{"v": 12}`, 12},
		{`{"v": 12.5}`, 12.5},
		{`{"v": "7"}`, 7},
		{`{"v": " 7.25 "}`, 7.25},
		{`{"v": ""}`, 0},
		{`{"v": "abc"}`, 0},
		{`{"v": null}`, 0},
		{`{"v": true}`, 0},
		{`{"v": [1]}`, 0},
		{`{}`, 0},
	}

	for _, tc := range cases {
		var payload struct {
			V FlexNumber `json:"v"`
		}
		if err := json.Unmarshal([]byte(tc.raw), &payload); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if float64(payload.V) != tc.want {
			t.Fatalf("coerce %s: got %v, want %v", tc.raw, float64(payload.V), tc.want)
		}
	}
}

func TestFlexCountTruncates(t *testing.T) {
	t.Parallel()

	var payload struct {
		V FlexCount `json:"v"`
	}
	if err := json.Unmarshal([]byte(`{"v": "9.9"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if int(payload.V) != 9 {
		t.Fatalf("got %d, want 9", int(payload.V))
	}
}
