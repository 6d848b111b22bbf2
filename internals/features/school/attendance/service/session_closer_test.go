package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
	slotModel "sekolahku_backend/internals/features/school/schedules/model"
)

/* =========================
   Fakes
========================= */

type fakeRoster struct {
	ids []uuid.UUID
	err error
}

func (f *fakeRoster) RosterForSlot(_ context.Context, _ slotModel.TimeSlotModel, _ m.ParticipantKind) ([]uuid.UUID, error) {
	return f.ids, f.err
}

// fakeStore behaves like the unique index + ON CONFLICT DO NOTHING path:
// inserting an already-present (kind, participant, slot, date) is a no-op.
type fakeStore struct {
	records []m.AttendanceRecordModel
}

type recordKey struct {
	kind m.ParticipantKind
	pid  uuid.UUID
	slot uuid.UUID
	date string
}

func keyOf(r m.AttendanceRecordModel) recordKey {
	return recordKey{
		kind: r.AttendanceRecordParticipantKind,
		pid:  r.AttendanceRecordParticipantID,
		slot: r.AttendanceRecordSlotID,
		date: r.AttendanceRecordDate.Format("2006-01-02"),
	}
}

func (f *fakeStore) FindForSlotDate(_ context.Context, slotID uuid.UUID, date time.Time) ([]m.AttendanceRecordModel, error) {
	var out []m.AttendanceRecordModel
	d := date.Format("2006-01-02")
	for _, r := range f.records {
		if r.AttendanceRecordSlotID == slotID && r.AttendanceRecordDate.Format("2006-01-02") == d {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) BulkInsertIfAbsent(_ context.Context, records []m.AttendanceRecordModel) (int64, error) {
	seen := make(map[recordKey]struct{}, len(f.records))
	for _, r := range f.records {
		seen[keyOf(r)] = struct{}{}
	}
	var inserted int64
	for _, r := range records {
		if _, ok := seen[keyOf(r)]; ok {
			continue
		}
		f.records = append(f.records, r)
		seen[keyOf(r)] = struct{}{}
		inserted++
	}
	return inserted, nil
}

func existingRecord(slot slotModel.TimeSlotModel, pid uuid.UUID, status m.AttendanceStatus, source m.AttendanceSource) m.AttendanceRecordModel {
	return m.AttendanceRecordModel{
		AttendanceRecordID:              uuid.New(),
		AttendanceRecordSchoolID:        slot.TimeSlotSchoolID,
		AttendanceRecordParticipantKind: m.ParticipantStudent,
		AttendanceRecordParticipantID:   pid,
		AttendanceRecordSlotID:          slot.TimeSlotID,
		AttendanceRecordDate:            sessionDate,
		AttendanceRecordStatus:          status,
		AttendanceRecordSource:          source,
	}
}

/* =========================
   Tests
========================= */

func TestCloseSessionMarksMissingAbsent(t *testing.T) {
	teacherID := uuid.New()
	slot := slotAt(7*60, &teacherID)

	roster := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	store := &fakeStore{records: []m.AttendanceRecordModel{
		existingRecord(slot, roster[0], m.StatusPresent, m.SourceAutomatic),
		existingRecord(slot, roster[1], m.StatusExcused, m.SourceManual),
	}}
	closer := NewCloser(&fakeRoster{ids: roster}, store)

	report, err := closer.CloseSession(context.Background(), slot, sessionDate, m.ParticipantStudent)
	if err != nil {
		t.Fatalf("CloseSession() error = %v", err)
	}
	if report.Created != 1 || report.AlreadyRecorded != 2 || report.RosterSize != 3 {
		t.Fatalf("report = %+v, want created=1 already=2 roster=3", report)
	}

	var closed *m.AttendanceRecordModel
	for i := range store.records {
		if store.records[i].AttendanceRecordParticipantID == roster[2] {
			closed = &store.records[i]
		}
	}
	if closed == nil {
		t.Fatal("missing participant was not written")
	}
	if closed.AttendanceRecordStatus != m.StatusAbsent {
		t.Errorf("closed status = %q, want absent", closed.AttendanceRecordStatus)
	}
	if closed.AttendanceRecordSource != m.SourceSystemClosure {
		t.Errorf("closed source = %q, want system_closure", closed.AttendanceRecordSource)
	}
}

func TestCloseSessionIsIdempotent(t *testing.T) {
	teacherID := uuid.New()
	slot := slotAt(7*60, &teacherID)
	roster := []uuid.UUID{uuid.New(), uuid.New()}
	store := &fakeStore{}
	closer := NewCloser(&fakeRoster{ids: roster}, store)

	first, err := closer.CloseSession(context.Background(), slot, sessionDate, m.ParticipantStudent)
	if err != nil {
		t.Fatalf("first CloseSession() error = %v", err)
	}
	if first.Created != 2 {
		t.Fatalf("first close created = %d, want 2", first.Created)
	}

	second, err := closer.CloseSession(context.Background(), slot, sessionDate, m.ParticipantStudent)
	if err != nil {
		t.Fatalf("second CloseSession() error = %v", err)
	}
	if second.Created != 0 || second.AlreadyRecorded != 2 {
		t.Fatalf("second close = %+v, want created=0 already=2", second)
	}
	if len(store.records) != 2 {
		t.Fatalf("store has %d records after double close, want 2", len(store.records))
	}
}

func TestCloseSessionNoScheduleRecordsDoNotCount(t *testing.T) {
	teacherID := uuid.New()
	slot := slotAt(7*60, &teacherID)
	pid := uuid.New()
	store := &fakeStore{records: []m.AttendanceRecordModel{
		existingRecord(slot, pid, m.StatusNoSchedule, m.SourceAutomatic),
	}}
	closer := NewCloser(&fakeRoster{ids: []uuid.UUID{pid}}, store)

	// a no_schedule row is treated as "no record": closure still writes absent,
	// but the fake's unique key blocks the insert like the DB index would.
	report, err := closer.CloseSession(context.Background(), slot, sessionDate, m.ParticipantStudent)
	if err != nil {
		t.Fatalf("CloseSession() error = %v", err)
	}
	if report.Created != 0 {
		t.Fatalf("report.Created = %d, want 0 (unique index wins)", report.Created)
	}
}

func TestCloseSessionRosterUnavailable(t *testing.T) {
	teacherID := uuid.New()

	tests := []struct {
		name   string
		slot   slotModel.TimeSlotModel
		roster *fakeRoster
		kind   m.ParticipantKind
	}{
		{"slot without teacher", slotAt(7*60, nil), &fakeRoster{ids: []uuid.UUID{uuid.New()}}, m.ParticipantStudent},
		{"empty roster", slotAt(7*60, &teacherID), &fakeRoster{}, m.ParticipantStudent},
		{"invalid kind", slotAt(7*60, &teacherID), &fakeRoster{ids: []uuid.UUID{uuid.New()}}, m.ParticipantKind("ghost")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closer := NewCloser(tt.roster, &fakeStore{})
			_, err := closer.CloseSession(context.Background(), tt.slot, sessionDate, tt.kind)
			if !errors.Is(err, ErrRosterUnavailable) {
				t.Fatalf("CloseSession() err = %v, want ErrRosterUnavailable", err)
			}
		})
	}
}

func TestCloseSessionPropagatesRosterError(t *testing.T) {
	teacherID := uuid.New()
	boom := errors.New("db down")
	closer := NewCloser(&fakeRoster{err: boom}, &fakeStore{})
	_, err := closer.CloseSession(context.Background(), slotAt(7*60, &teacherID), sessionDate, m.ParticipantStudent)
	if !errors.Is(err, boom) {
		t.Fatalf("CloseSession() err = %v, want wrapped roster error", err)
	}
}

func TestCloseSessionKindsAreIndependent(t *testing.T) {
	teacherID := uuid.New()
	slot := slotAt(7*60, &teacherID)

	// teacher record must not satisfy a student closure
	store := &fakeStore{records: []m.AttendanceRecordModel{{
		AttendanceRecordID:              uuid.New(),
		AttendanceRecordParticipantKind: m.ParticipantTeacher,
		AttendanceRecordParticipantID:   teacherID,
		AttendanceRecordSlotID:          slot.TimeSlotID,
		AttendanceRecordDate:            sessionDate,
		AttendanceRecordStatus:          m.StatusPresent,
		AttendanceRecordSource:          m.SourceAutomatic,
	}}}
	pid := uuid.New()
	closer := NewCloser(&fakeRoster{ids: []uuid.UUID{pid}}, store)

	report, err := closer.CloseSession(context.Background(), slot, sessionDate, m.ParticipantStudent)
	if err != nil {
		t.Fatalf("CloseSession() error = %v", err)
	}
	if report.Created != 1 {
		t.Fatalf("report.Created = %d, want 1", report.Created)
	}
}

func TestSlotSnapshot(t *testing.T) {
	teacherID := uuid.New()
	subj := "Matematika"
	room := "Lab 2"
	slot := slotAt(7*60, &teacherID)
	slot.TimeSlotSubjectName = &subj
	slot.TimeSlotRoomLabel = &room

	snap := SlotSnapshot(slot)
	if snap["time_slot_start_time"] != "07:00:00" {
		t.Errorf("snapshot start = %v, want 07:00:00", snap["time_slot_start_time"])
	}
	if snap["time_slot_subject_name"] != subj {
		t.Errorf("snapshot subject = %v, want %q", snap["time_slot_subject_name"], subj)
	}
	if snap["time_slot_teacher_id"] != teacherID.String() {
		t.Errorf("snapshot teacher = %v", snap["time_slot_teacher_id"])
	}

	bare := slotAt(7*60, nil)
	snapBare := SlotSnapshot(bare)
	if _, ok := snapBare["time_slot_teacher_id"]; ok {
		t.Error("snapshot of teacherless slot should omit teacher id")
	}
}
