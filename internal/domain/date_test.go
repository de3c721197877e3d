package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.January, 15)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2025-01-15"` {
		t.Errorf("Marshal() = %s, want %q", data, "2025-01-15")
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("round trip changed date: got %v, want %v", parsed, d)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15.01.2025"`), &d); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero date for null")
	}
}

func TestDateMarshalZero(t *testing.T) {
	data, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(zero) = %s, want null", data)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, time.February, 29, 13, 45, 0, 0, time.Local)); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !d.Equal(NewDate(2024, time.February, 29)) {
		t.Errorf("Scan() = %v, want 2024-02-29", d)
	}

	if err := d.Scan("2025-06-01"); err != nil {
		t.Fatalf("Scan(string) error = %v", err)
	}
	if !d.Equal(NewDate(2025, time.June, 1)) {
		t.Errorf("Scan(string) = %v, want 2025-06-01", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if !d.IsZero() {
		t.Error("Scan(nil) should yield zero date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning unsupported type")
	}
}

func TestDateValue(t *testing.T) {
	d := NewDate(2025, time.January, 15)
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if _, ok := v.(time.Time); !ok {
		t.Errorf("Value() type = %T, want time.Time", v)
	}

	v, err = (Date{}).Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != nil {
		t.Errorf("Value(zero) = %v, want nil", v)
	}
}
