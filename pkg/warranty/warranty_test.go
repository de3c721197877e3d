package warranty

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpirationDate(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		months   int
		want     time.Time
	}{
		{
			name:     "two year warranty",
			purchase: date(2025, time.January, 15),
			months:   24,
			want:     date(2027, time.January, 15),
		},
		{
			name:     "mid year purchase",
			purchase: date(2024, time.May, 1),
			months:   12,
			want:     date(2025, time.May, 1),
		},
		{
			name:     "january 31 clamps to february 28",
			purchase: date(2025, time.January, 31),
			months:   1,
			want:     date(2025, time.February, 28),
		},
		{
			name:     "january 31 clamps to february 29 in leap year",
			purchase: date(2024, time.January, 31),
			months:   1,
			want:     date(2024, time.February, 29),
		},
		{
			name:     "march 31 clamps to april 30",
			purchase: date(2025, time.March, 31),
			months:   1,
			want:     date(2025, time.April, 30),
		},
		{
			name:     "crosses year boundary",
			purchase: date(2025, time.November, 10),
			months:   3,
			want:     date(2026, time.February, 10),
		},
		{
			name:     "leap day plus one year lands on february 28",
			purchase: date(2024, time.February, 29),
			months:   12,
			want:     date(2025, time.February, 28),
		},
		{
			name:     "zero months",
			purchase: date(2025, time.June, 15),
			months:   0,
			want:     date(2025, time.June, 15),
		},
		{
			name:     "long warranty",
			purchase: date(2025, time.August, 31),
			months:   18,
			want:     date(2027, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpirationDate(tt.purchase, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("ExpirationDate(%v, %d) = %v, want %v",
					tt.purchase.Format("2006-01-02"), tt.months,
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestExpirationDatePreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Sofia")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	purchase := time.Date(2025, time.January, 15, 0, 0, 0, 0, loc)
	got := ExpirationDate(purchase, 6)

	if got.Location() != loc {
		t.Errorf("ExpirationDate() location = %v, want %v", got.Location(), loc)
	}
}
