// file: internals/features/school/attendance/service/session_closer.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
	slotModel "sekolahku_backend/internals/features/school/schedules/model"
)

var ErrRosterUnavailable = errors.New("roster tidak bisa di-resolve untuk slot ini")

/* =========================
   Boundaries
========================= */

// RosterProvider: satu-satunya tempat yang bercabang student vs teacher.
type RosterProvider interface {
	RosterForSlot(ctx context.Context, slot slotModel.TimeSlotModel, kind m.ParticipantKind) ([]uuid.UUID, error)
}

// RecordStore: kontrak persistence yang dibutuhkan closer. Insert batch harus
// ON CONFLICT DO NOTHING dalam satu transaksi — duplikat karena race adalah
// no-op jinak, bukan error.
type RecordStore interface {
	FindForSlotDate(ctx context.Context, slotID uuid.UUID, date time.Time) ([]m.AttendanceRecordModel, error)
	BulkInsertIfAbsent(ctx context.Context, records []m.AttendanceRecordModel) (int64, error)
}

/* =========================
   Session Closer
========================= */

type ClosureReport struct {
	SlotID          uuid.UUID `json:"slot_id"`
	Date            string    `json:"date"`
	RosterSize      int       `json:"roster_size"`
	Created         int       `json:"created"`          // otomatis ditandai alfa
	AlreadyRecorded int       `json:"already_recorded"` // sudah punya catatan (manual/otomatis)
}

type Closer struct {
	Roster RosterProvider
	Store  RecordStore
}

func NewCloser(roster RosterProvider, store RecordStore) *Closer {
	return &Closer{Roster: roster, Store: store}
}

// CloseSession menutup sesi absensi satu slot/tanggal: semua peserta roster
// yang belum punya record dibuatkan record `absent` (source system_closure).
// Idempoten — jalankan dua kali, yang kedua Created=0.
func (cl *Closer) CloseSession(ctx context.Context, slot slotModel.TimeSlotModel, date time.Time, kind m.ParticipantKind) (ClosureReport, error) {
	report := ClosureReport{
		SlotID: slot.TimeSlotID,
		Date:   date.Format("2006-01-02"),
	}

	if !kind.Valid() {
		return report, ErrRosterUnavailable
	}
	// Slot cacat (tanpa guru) tidak ikut closure sama sekali.
	if slot.TimeSlotTeacherID == nil {
		return report, ErrRosterUnavailable
	}

	roster, err := cl.Roster.RosterForSlot(ctx, slot, kind)
	if err != nil {
		return report, err
	}
	if len(roster) == 0 {
		return report, ErrRosterUnavailable
	}
	report.RosterSize = len(roster)

	existing, err := cl.Store.FindForSlotDate(ctx, slot.TimeSlotID, date)
	if err != nil {
		return report, err
	}

	missing := missingParticipants(roster, existing, kind)
	report.AlreadyRecorded = len(roster) - len(missing)
	if len(missing) == 0 {
		return report, nil
	}

	records := make([]m.AttendanceRecordModel, 0, len(missing))
	for _, pid := range missing {
		records = append(records, m.AttendanceRecordModel{
			AttendanceRecordSchoolID:        slot.TimeSlotSchoolID,
			AttendanceRecordParticipantKind: kind,
			AttendanceRecordParticipantID:   pid,
			AttendanceRecordSlotID:          slot.TimeSlotID,
			AttendanceRecordDate:            date,
			AttendanceRecordStatus:          m.StatusAbsent,
			AttendanceRecordSource:          m.SourceSystemClosure,
			AttendanceRecordSlotSnapshot:    SlotSnapshot(slot),
		})
	}

	inserted, err := cl.Store.BulkInsertIfAbsent(ctx, records)
	if err != nil {
		return report, err
	}
	// inserted < len(missing) berarti closure paralel menang sebagian — tetap sukses
	report.Created = int(inserted)
	report.AlreadyRecorded = len(roster) - report.Created
	return report, nil
}

// missingParticipants: anggota roster tanpa record untuk slot/tanggal ini.
// Record no_schedule diperlakukan bukan-record (tidak ikut hitungan closure).
func missingParticipants(roster []uuid.UUID, existing []m.AttendanceRecordModel, kind m.ParticipantKind) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(existing))
	for _, r := range existing {
		if r.AttendanceRecordParticipantKind != kind {
			continue
		}
		if r.AttendanceRecordStatus == m.StatusNoSchedule {
			continue
		}
		seen[r.AttendanceRecordParticipantID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, pid := range roster {
		if _, ok := seen[pid]; !ok {
			missing = append(missing, pid)
		}
	}
	return missing
}

// SlotSnapshot: denormalisasi ringan untuk tampilan historis record.
func SlotSnapshot(slot slotModel.TimeSlotModel) map[string]interface{} {
	snap := map[string]interface{}{
		"time_slot_weekday":    slot.TimeSlotWeekday,
		"time_slot_start_time": slot.TimeSlotStartTime.Format("15:04:05"),
		"time_slot_end_time":   slot.TimeSlotEndTime.Format("15:04:05"),
	}
	if slot.TimeSlotSubjectName != nil {
		snap["time_slot_subject_name"] = *slot.TimeSlotSubjectName
	}
	if slot.TimeSlotTeacherID != nil {
		snap["time_slot_teacher_id"] = slot.TimeSlotTeacherID.String()
	}
	if slot.TimeSlotRoomLabel != nil {
		snap["time_slot_room_label"] = *slot.TimeSlotRoomLabel
	}
	return snap
}
