// file: internals/features/school/attendance/service/status_resolver.go
package service

import (
	"time"

	m "sekolahku_backend/internals/features/school/attendance/model"
	slotModel "sekolahku_backend/internals/features/school/schedules/model"
)

/* =========================
   Status Resolver
========================= */

// ResolveInput: semua masukan eksplisit — tanggal/jam TIDAK pernah dibaca dari
// clock ambient supaya deterministik dan gampang dites.
type ResolveInput struct {
	Slot         slotModel.TimeSlotModel
	Date         time.Time  // tanggal sesi (kalender sekolah)
	CheckedInAt  *time.Time // nil = belum check-in
	ManualStatus *m.AttendanceStatus
	ManualReason *string
	GraceMinutes int
}

// Resolve menghitung status kanonik untuk satu peserta terhadap satu slot.
// Urutan prioritas:
//  1. status manual selalu menang (resolver tidak pernah menimpanya)
//  2. slot cacat (tanpa guru) → no_schedule, dikecualikan dari closure
//  3. belum check-in → absent (pending sampai closure)
//  4. delta = checkin − jam mulai; delta ≤ grace → present, lebih → late
func Resolve(in ResolveInput) (m.AttendanceStatus, *string) {
	if in.ManualStatus != nil {
		return *in.ManualStatus, in.ManualReason
	}

	if in.Slot.TimeSlotTeacherID == nil {
		return m.StatusNoSchedule, nil
	}

	if in.CheckedInAt == nil {
		return m.StatusAbsent, nil
	}

	delta := lateMinutes(in.Slot, in.Date, *in.CheckedInAt)
	if delta <= in.GraceMinutes {
		return m.StatusPresent, nil
	}
	return m.StatusLate, nil
}

// lateMinutes: menit keterlambatan relatif jam mulai slot pada tanggal sesi.
// Negatif = datang sebelum jam mulai.
func lateMinutes(slot slotModel.TimeSlotModel, date, checkedInAt time.Time) int {
	start := time.Date(date.Year(), date.Month(), date.Day(),
		slot.TimeSlotStartTime.Hour(), slot.TimeSlotStartTime.Minute(), 0, 0, checkedInAt.Location())
	return int(checkedInAt.Sub(start) / time.Minute)
}
