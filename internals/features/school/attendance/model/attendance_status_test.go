package model

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want AttendanceStatus
		ok   bool
	}{
		{"present", StatusPresent, true},
		{"hadir", StatusPresent, true},
		{"late", StatusLate, true},
		{"terlambat", StatusLate, true},
		{"sick", StatusSick, true},
		{"sakit", StatusSick, true},
		{"excused", StatusExcused, true},
		{"izin", StatusExcused, true},
		{"absent", StatusAbsent, true},
		{"alfa", StatusAbsent, true},
		{"alpha", StatusAbsent, true},
		{"early_departure", StatusEarlyDeparture, true},
		{"pulang", StatusEarlyDeparture, true},
		{"return", StatusEarlyDeparture, true},
		{"no_schedule", StatusNoSchedule, true},

		// normalisasi boundary
		{"  Izin  ", StatusExcused, true},
		{"PULANG", StatusEarlyDeparture, true},
		{"Hadir", StatusPresent, true},

		{"", "", false},
		{"bolos", "", false},
		{"present ", StatusPresent, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStatus(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// Sinonim harus konvergen ke SATU nilai kanonik — tidak boleh ada dua ejaan
// untuk konsep yang sama lolos sebagai nilai berbeda.
func TestParseStatusSynonymsConverge(t *testing.T) {
	pairs := [][2]string{
		{"izin", "excused"},
		{"pulang", "return"},
		{"pulang", "early_departure"},
		{"alfa", "absent"},
		{"hadir", "present"},
	}
	for _, p := range pairs {
		a, _ := ParseStatus(p[0])
		b, _ := ParseStatus(p[1])
		if a != b {
			t.Errorf("ParseStatus(%q)=%q != ParseStatus(%q)=%q", p[0], a, p[1], b)
		}
	}
}

func TestParseStatusRoundTrip(t *testing.T) {
	all := []AttendanceStatus{
		StatusPresent, StatusLate, StatusSick, StatusExcused,
		StatusAbsent, StatusEarlyDeparture, StatusNoSchedule,
	}
	for _, s := range all {
		got, ok := ParseStatus(string(s))
		if !ok || got != s {
			t.Errorf("canonical %q did not round-trip: got (%q, %v)", s, got, ok)
		}
	}
}

func TestParticipantKindValid(t *testing.T) {
	if !ParticipantStudent.Valid() || !ParticipantTeacher.Valid() {
		t.Error("student/teacher must be valid kinds")
	}
	if ParticipantKind("admin").Valid() || ParticipantKind("").Valid() {
		t.Error("unknown kinds must be invalid")
	}
}
