package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
	slotModel "sekolahku_backend/internals/features/school/schedules/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

var sessionDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

func slotAt(startMin int, teacher *uuid.UUID) slotModel.TimeSlotModel {
	return slotModel.TimeSlotModel{
		TimeSlotID:        uuid.New(),
		TimeSlotWeekday:   1,
		TimeSlotStartTime: dbtime.FromMinutes(startMin),
		TimeSlotEndTime:   dbtime.FromMinutes(startMin + 90),
		TimeSlotTeacherID: teacher,
	}
}

func checkinAt(min int) *time.Time {
	t := time.Date(sessionDate.Year(), sessionDate.Month(), sessionDate.Day(),
		min/60, min%60, 0, 0, time.UTC)
	return &t
}

func statusPtr(s m.AttendanceStatus) *m.AttendanceStatus { return &s }

func TestResolve(t *testing.T) {
	teacherID := uuid.New()
	withTeacher := slotAt(7*60, &teacherID) // starts 07:00
	const grace = 15

	tests := []struct {
		name string
		in   ResolveInput
		want m.AttendanceStatus
	}{
		{
			name: "checked in before start",
			in:   ResolveInput{Slot: withTeacher, Date: sessionDate, CheckedInAt: checkinAt(6*60 + 50), GraceMinutes: grace},
			want: m.StatusPresent,
		},
		{
			name: "checked in exactly at start",
			in:   ResolveInput{Slot: withTeacher, Date: sessionDate, CheckedInAt: checkinAt(7 * 60), GraceMinutes: grace},
			want: m.StatusPresent,
		},
		{
			name: "checked in exactly at start plus grace",
			in:   ResolveInput{Slot: withTeacher, Date: sessionDate, CheckedInAt: checkinAt(7*60 + grace), GraceMinutes: grace},
			want: m.StatusPresent,
		},
		{
			name: "one minute past grace",
			in:   ResolveInput{Slot: withTeacher, Date: sessionDate, CheckedInAt: checkinAt(7*60 + grace + 1), GraceMinutes: grace},
			want: m.StatusLate,
		},
		{
			name: "zero grace makes start the cutoff",
			in:   ResolveInput{Slot: withTeacher, Date: sessionDate, CheckedInAt: checkinAt(7*60 + 1), GraceMinutes: 0},
			want: m.StatusLate,
		},
		{
			name: "no check-in pending absent",
			in:   ResolveInput{Slot: withTeacher, Date: sessionDate, CheckedInAt: nil, GraceMinutes: grace},
			want: m.StatusAbsent,
		},
		{
			name: "slot without teacher",
			in:   ResolveInput{Slot: slotAt(7*60, nil), Date: sessionDate, CheckedInAt: checkinAt(7 * 60), GraceMinutes: grace},
			want: m.StatusNoSchedule,
		},
		{
			name: "manual status wins over automatic",
			in: ResolveInput{
				Slot: withTeacher, Date: sessionDate,
				CheckedInAt:  checkinAt(7*60 + 45), // would be late
				ManualStatus: statusPtr(m.StatusExcused),
				GraceMinutes: grace,
			},
			want: m.StatusExcused,
		},
		{
			name: "manual status wins even without teacher",
			in: ResolveInput{
				Slot: slotAt(7*60, nil), Date: sessionDate,
				ManualStatus: statusPtr(m.StatusSick),
				GraceMinutes: grace,
			},
			want: m.StatusSick,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Resolve(tt.in)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveKeepsManualReason(t *testing.T) {
	teacherID := uuid.New()
	reason := "surat dokter"
	status, gotReason := Resolve(ResolveInput{
		Slot:         slotAt(7*60, &teacherID),
		Date:         sessionDate,
		ManualStatus: statusPtr(m.StatusSick),
		ManualReason: &reason,
		GraceMinutes: 15,
	})
	if status != m.StatusSick {
		t.Fatalf("Resolve() status = %q, want sick", status)
	}
	if gotReason == nil || *gotReason != reason {
		t.Fatalf("Resolve() reason = %v, want %q", gotReason, reason)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	teacherID := uuid.New()
	in := ResolveInput{
		Slot:         slotAt(7*60, &teacherID),
		Date:         sessionDate,
		CheckedInAt:  checkinAt(7*60 + 10),
		GraceMinutes: 15,
	}
	first, _ := Resolve(in)
	for i := 0; i < 5; i++ {
		if got, _ := Resolve(in); got != first {
			t.Fatalf("Resolve() changed between calls: %q then %q", first, got)
		}
	}
}
