// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

var (
	ErrUnknownStatus  = errors.New("status tidak dikenal")
	ErrBadDate        = errors.New("tanggal harus format YYYY-MM-DD")
	ErrBadParticipant = errors.New("participant_kind harus student atau teacher")
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Check-in otomatis (scan kartu / QR / tombol hadir)
type CheckInRequest struct {
	AttendanceSlotID          uuid.UUID `json:"attendance_slot_id" validate:"required"`
	AttendanceParticipantKind string    `json:"attendance_participant_kind" validate:"required,oneof=student teacher"`
	AttendanceParticipantID   uuid.UUID `json:"attendance_participant_id" validate:"required"`
	AttendanceDate            string    `json:"attendance_date" validate:"required"`        // YYYY-MM-DD
	AttendanceCheckedInAt     string    `json:"attendance_checked_in_at" validate:"required"` // RFC3339
}

func (r CheckInRequest) Parse() (kind m.ParticipantKind, date time.Time, checkedInAt time.Time, err error) {
	kind = m.ParticipantKind(strings.ToLower(strings.TrimSpace(r.AttendanceParticipantKind)))
	if !kind.Valid() {
		err = ErrBadParticipant
		return
	}
	date, err = parseDate(r.AttendanceDate)
	if err != nil {
		return
	}
	checkedInAt, err = time.Parse(time.RFC3339, strings.TrimSpace(r.AttendanceCheckedInAt))
	return
}

// Entry manual guru/staf. Status menerima sinonim (izin/pulang/return) dan
// dinormalisasi ke kanonik di Parse — tidak pernah ada dua ejaan tersimpan.
type ManualStatusRequest struct {
	AttendanceSlotID          uuid.UUID `json:"attendance_slot_id" validate:"required"`
	AttendanceParticipantKind string    `json:"attendance_participant_kind" validate:"required,oneof=student teacher"`
	AttendanceParticipantID   uuid.UUID `json:"attendance_participant_id" validate:"required"`
	AttendanceDate            string    `json:"attendance_date" validate:"required"`
	AttendanceStatus          string    `json:"attendance_status" validate:"required"`
	AttendanceReason          *string   `json:"attendance_reason" validate:"omitempty,max=500"`
}

func (r ManualStatusRequest) Parse() (kind m.ParticipantKind, date time.Time, status m.AttendanceStatus, err error) {
	kind = m.ParticipantKind(strings.ToLower(strings.TrimSpace(r.AttendanceParticipantKind)))
	if !kind.Valid() {
		err = ErrBadParticipant
		return
	}
	date, err = parseDate(r.AttendanceDate)
	if err != nil {
		return
	}
	var ok bool
	status, ok = m.ParseStatus(r.AttendanceStatus)
	if !ok {
		err = ErrUnknownStatus
	}
	return
}

// Tutup sesi (bulk auto-alfa)
type CloseSessionRequest struct {
	AttendanceSlotID          uuid.UUID `json:"attendance_slot_id" validate:"required"`
	AttendanceParticipantKind string    `json:"attendance_participant_kind" validate:"required,oneof=student teacher"`
	AttendanceDate            string    `json:"attendance_date" validate:"required"`
}

func (r CloseSessionRequest) Parse() (kind m.ParticipantKind, date time.Time, err error) {
	kind = m.ParticipantKind(strings.ToLower(strings.TrimSpace(r.AttendanceParticipantKind)))
	if !kind.Valid() {
		err = ErrBadParticipant
		return
	}
	date, err = parseDate(r.AttendanceDate)
	return
}

type UpdateSettingRequest struct {
	AttendanceSettingGraceMinutes *int    `json:"attendance_setting_grace_minutes" validate:"omitempty,min=0,max=180"`
	AttendanceSettingSchoolStart  *string `json:"attendance_setting_school_start" validate:"omitempty"`
	AttendanceSettingSchoolEnd    *string `json:"attendance_setting_school_end" validate:"omitempty"`
	AttendanceSettingSchoolDays   []int64 `json:"attendance_setting_school_days" validate:"omitempty,dive,min=1,max=7"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

// Satu baris tampilan sesi: peserta roster + record-nya (kalau ada).
// Peserta tanpa record tampil dengan status kosong ("-" di UI) — unset dan
// alfa-hasil-closure adalah dua state yang berbeda.
type SessionEntryResponse struct {
	ParticipantID uuid.UUID               `json:"participant_id"`
	Record        *m.AttendanceRecordModel `json:"record,omitempty"`
	Status        *m.AttendanceStatus      `json:"status,omitempty"`
	Label         *StatusLabel             `json:"label,omitempty"`
}

type SessionViewResponse struct {
	SlotID    uuid.UUID              `json:"slot_id"`
	Date      string                 `json:"date"`
	Kind      m.ParticipantKind      `json:"participant_kind"`
	Entries   []SessionEntryResponse `json:"entries"`
	Recorded  int                    `json:"recorded"`
	Unrecorded int                   `json:"unrecorded"`
}

// Rekap per status untuk dashboard/ekspor.
type RecapRow struct {
	Status m.AttendanceStatus `json:"status"`
	Count  int64              `json:"count"`
}
