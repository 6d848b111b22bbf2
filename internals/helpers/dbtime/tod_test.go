package dbtime

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		wantMin int
		wantErr bool
	}{
		{"07:00", 7 * 60, false},
		{"07:00:00", 7 * 60, false},
		{"15:30", 15*60 + 30, false},
		{"00:00", 0, false},
		{"23:59", 23*60 + 59, false},
		{" 08:15 ", 8*60 + 15, false},
		{"7:00", 0, true},
		{"25:00", 0, true},
		{"bukan jam", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.MinuteOfDay() != tt.wantMin {
				t.Errorf("Parse(%q).MinuteOfDay() = %d, want %d", tt.in, got.MinuteOfDay(), tt.wantMin)
			}
		})
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	for _, min := range []int{0, 1, 7 * 60, 8*60 + 30, 23*60 + 59} {
		if got := FromMinutes(min).MinuteOfDay(); got != min {
			t.Errorf("FromMinutes(%d).MinuteOfDay() = %d", min, got)
		}
	}
}

func TestFromDropsDateAndZone(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	src := time.Date(2026, 8, 29, 13, 45, 12, 0, loc)
	tod := From(src)
	if tod.Hour() != 13 || tod.Minute() != 45 || tod.Second() != 12 {
		t.Fatalf("From() kept wrong clock: %v", tod)
	}
	if tod.Year() != 0 {
		t.Errorf("From() kept the date: %v", tod)
	}
}

func TestScan(t *testing.T) {
	var tod Tod
	if err := tod.Scan("09:05:00"); err != nil {
		t.Fatalf("Scan(string) error = %v", err)
	}
	if tod.MinuteOfDay() != 9*60+5 {
		t.Errorf("Scan(string) = %d minutes", tod.MinuteOfDay())
	}

	if err := tod.Scan([]byte("10:15")); err != nil {
		t.Fatalf("Scan([]byte) error = %v", err)
	}
	if tod.MinuteOfDay() != 10*60+15 {
		t.Errorf("Scan([]byte) = %d minutes", tod.MinuteOfDay())
	}

	if err := tod.Scan(time.Date(0, 1, 1, 11, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time.Time) error = %v", err)
	}
	if tod.MinuteOfDay() != 11*60+30 {
		t.Errorf("Scan(time.Time) = %d minutes", tod.MinuteOfDay())
	}

	if err := tod.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestValueAndJSON(t *testing.T) {
	tod, _ := Parse("07:30")
	v, err := tod.Value()
	if err != nil || v != "07:30:00" {
		t.Fatalf("Value() = (%v, %v), want 07:30:00", v, err)
	}

	b, err := tod.MarshalJSON()
	if err != nil || string(b) != `"07:30:00"` {
		t.Fatalf("MarshalJSON() = (%s, %v)", b, err)
	}

	var back Tod
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back.MinuteOfDay() != tod.MinuteOfDay() {
		t.Errorf("JSON round-trip lost time: %d != %d", back.MinuteOfDay(), tod.MinuteOfDay())
	}
}
