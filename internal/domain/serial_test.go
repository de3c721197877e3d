package domain

import "testing"

func TestAcceptsSerial(t *testing.T) {
	passport := Passport{
		ID:               1,
		SerialPrefix:     "SN",
		FromSerialNumber: 1,
		ToSerialNumber:   100,
	}

	tests := []struct {
		name   string
		serial string
		want   bool
	}{
		{"inside range", "SN0050", true},
		{"lower bound", "SN1", true},
		{"upper bound", "SN100", true},
		{"zero padded bound", "SN0100", true},
		{"above range", "SN0150", false},
		{"below range", "SN0", false},
		{"wrong prefix", "XX0050", false},
		{"prefix only", "SN", false},
		{"malformed suffix", "SN12a", false},
		{"signed suffix", "SN+50", false},
		{"empty serial", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := passport.AcceptsSerial(tt.serial); got != tt.want {
				t.Errorf("AcceptsSerial(%q) = %v, want %v", tt.serial, got, tt.want)
			}
		})
	}
}

func TestMatchingPassports(t *testing.T) {
	candidates := []Passport{
		{ID: 2, SerialPrefix: "XYZ", FromSerialNumber: 100, ToSerialNumber: 300},
		{ID: 1, SerialPrefix: "ABC", FromSerialNumber: 100, ToSerialNumber: 200},
	}

	matches := MatchingPassports("ABC150", candidates)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].SerialPrefix != "ABC" {
		t.Errorf("expected ABC passport, got %s", matches[0].SerialPrefix)
	}

	if got := MatchingPassports("ABC999", candidates); got != nil {
		t.Errorf("expected no match for out-of-range serial, got %v", got)
	}
}

func TestMatchingPassportsOrdersByID(t *testing.T) {
	// Overlapping ranges should not exist, but a direct data edit can
	// produce them; resolution must stay deterministic.
	candidates := []Passport{
		{ID: 7, SerialPrefix: "SN", FromSerialNumber: 1, ToSerialNumber: 100},
		{ID: 3, SerialPrefix: "SN", FromSerialNumber: 50, ToSerialNumber: 150},
	}

	matches := MatchingPassports("SN0060", candidates)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].ID != 3 {
		t.Errorf("expected lowest passport id first, got %d", matches[0].ID)
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 int
		want           bool
	}{
		{"disjoint", 1, 100, 101, 200, false},
		{"identical", 1, 100, 1, 100, true},
		{"contained", 1, 100, 40, 60, true},
		{"partial overlap", 1, 100, 90, 150, true},
		{"touching bounds", 1, 100, 100, 200, true},
		{"reverse disjoint", 200, 300, 1, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Errorf("RangesOverlap(%d,%d,%d,%d) = %v, want %v",
					tt.a1, tt.a2, tt.b1, tt.b2, got, tt.want)
			}
		})
	}
}
