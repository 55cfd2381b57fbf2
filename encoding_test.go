package decimal

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecimal_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got Decimal
		if err := got.UnmarshalText([]byte(" -1e-10 ")); err != nil {
			t.Fatalf("UnmarshalText failed: %v", err)
		}
		if diff := cmp.Diff(MustParse("-0.0000000001"), got); diff != "" {
			t.Errorf("mismatch (-want, +got):\n%s", diff)
		}
	})

	t.Run("error", func(t *testing.T) {
		var d Decimal
		if err := d.UnmarshalText([]byte("1e1000")); !errors.Is(err, ErrOverflow) {
			t.Errorf("UnmarshalText failed with %v, want %v", err, ErrOverflow)
		}
	})
}

func TestDecimal_MarshalText(t *testing.T) {
	got, err := MustParse("-0000001.23456000E-3").MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(got) != "-0.00123456" {
		t.Errorf("MarshalText() = %q, want %q", got, "-0.00123456")
	}
}

type payment struct {
	Amount Decimal  `json:"amount"`
	Fee    *Decimal `json:"fee,omitempty"`
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			data string
			want payment
		}{
			{`{"amount": "128.128"}`, payment{Amount: MustParse("128.128")}},
			{`{"amount": 128.128}`, payment{Amount: MustParse("128.128")}},
			{`{"amount": -1e-10}`, payment{Amount: MustParse("-1e-10")}},
			{`{"amount": "1.5"}`, payment{Amount: MustParse("1.5")}},
			{`{"amount": null}`, payment{}},
		}
		for _, tt := range tests {
			var got payment
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("json.Unmarshal(%s) mismatch (-want, +got):\n%s", tt.data, diff)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			data string
			want error
		}{
			{`{"amount": "NaN"}`, ErrInvalid},
			{`{"amount": ""}`, ErrEmpty},
			{`{"amount": "1e127"}`, ErrOverflow},
		}
		for _, tt := range tests {
			var got payment
			err := json.Unmarshal([]byte(tt.data), &got)
			if !errors.Is(err, tt.want) {
				t.Errorf("json.Unmarshal(%s) failed with %v, want %v", tt.data, err, tt.want)
			}
		}
	})
}

func TestDecimal_MarshalJSON(t *testing.T) {
	fee := MustParse("0.25")
	got, err := json.Marshal(payment{Amount: MustParse("-65536.65536"), Fee: &fee})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"amount":"-65536.65536","fee":"0.25"}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestDecimal_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"-128.128", "-128.128"},
			{[]byte("  42  "), "42"},
			{int64(math.MinInt64), "-9223372036854775808"},
			{0.1, "0.1"},
			{1e21, "1000000000000000000000"},
			{-2.5e-7, "-0.00000025"},
		}
		for _, tt := range tests {
			var got Decimal
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{
			nil,
			true,
			int32(1),
			"abc",
			math.NaN(),
			math.Inf(1),
		}
		for _, tt := range tests {
			var d Decimal
			if err := d.Scan(tt); !errors.Is(err, ErrInvalid) {
				t.Errorf("Scan(%v) failed with %v, want %v", tt, err, ErrInvalid)
			}
		}
	})
}

func TestDecimal_Value(t *testing.T) {
	got, err := MustParse("-1e-10").Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if got != "-0.0000000001" {
		t.Errorf("Value() = %v, want %v", got, "-0.0000000001")
	}
}

func TestNullDecimal_Scan(t *testing.T) {
	tests := []struct {
		value any
		want  NullDecimal
	}{
		{nil, NullDecimal{}},
		{"1.5", NullDecimal{Decimal: MustParse("1.5"), Valid: true}},
		{int64(-7), NullDecimal{Decimal: MustParse("-7"), Valid: true}},
	}
	for _, tt := range tests {
		got := NullDecimal{Decimal: MustParse("99"), Valid: true}
		if err := got.Scan(tt.value); err != nil {
			t.Errorf("Scan(%v) failed: %v", tt.value, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Scan(%v) mismatch (-want, +got):\n%s", tt.value, diff)
		}
	}

	var n NullDecimal
	if err := n.Scan("1.2.3"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Scan(%q) failed with %v, want %v", "1.2.3", err, ErrInvalid)
	}
	if n.Valid {
		t.Errorf("Scan(%q) left decimal valid", "1.2.3")
	}
}

func TestNullDecimal_Value(t *testing.T) {
	got, err := NullDecimal{}.Value()
	if err != nil || got != nil {
		t.Errorf("NullDecimal{}.Value() = (%v, %v), want (nil, nil)", got, err)
	}
	got, err = NullDecimal{Decimal: MustParse("3.14"), Valid: true}.Value()
	if err != nil || got != "3.14" {
		t.Errorf("Value() = (%v, %v), want (3.14, nil)", got, err)
	}
}
