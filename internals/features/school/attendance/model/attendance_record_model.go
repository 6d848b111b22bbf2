// file: internals/features/school/attendance/model/attendance_record_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

// ParticipantKind: peserta absensi polimorfik (siswa ATAU guru).
type ParticipantKind string

const (
	ParticipantStudent ParticipantKind = "student"
	ParticipantTeacher ParticipantKind = "teacher"
)

func (k ParticipantKind) Valid() bool {
	return k == ParticipantStudent || k == ParticipantTeacher
}

// AttendanceStatus: nilai kanonik. Sinonim (izin/pulang/return) dinormalisasi
// di boundary lewat ParseStatus — engine tidak pernah menyimpan dua ejaan
// untuk konsep yang sama.
type AttendanceStatus string

const (
	StatusPresent        AttendanceStatus = "present"
	StatusLate           AttendanceStatus = "late"
	StatusSick           AttendanceStatus = "sick"
	StatusExcused        AttendanceStatus = "excused"         // izin
	StatusAbsent         AttendanceStatus = "absent"          // alfa
	StatusEarlyDeparture AttendanceStatus = "early_departure" // pulang
	StatusNoSchedule     AttendanceStatus = "no_schedule"
)

// ParseStatus menormalkan label masukan (termasuk sinonim backend/frontend lama)
// ke nilai kanonik. Round-trip lossless: izin == excused, pulang == return ==
// early_departure.
func ParseStatus(s string) (AttendanceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "hadir":
		return StatusPresent, true
	case "late", "terlambat":
		return StatusLate, true
	case "sick", "sakit":
		return StatusSick, true
	case "excused", "izin":
		return StatusExcused, true
	case "absent", "alfa", "alpha":
		return StatusAbsent, true
	case "early_departure", "pulang", "return":
		return StatusEarlyDeparture, true
	case "no_schedule":
		return StatusNoSchedule, true
	default:
		return "", false
	}
}

// AttendanceSource: asal tulisan record.
type AttendanceSource string

const (
	SourceManual        AttendanceSource = "manual"
	SourceAutomatic     AttendanceSource = "automatic"
	SourceSystemClosure AttendanceSource = "system_closure"
)

/* =========================================
   Model: attendance_records
========================================= */

// Satu baris per (kind, participant, slot, date) — unique index menegakkan
// invariannya; penulisan ganda pakai upsert, tidak pernah duplikat.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_record_id"`

	AttendanceRecordSchoolID uuid.UUID `gorm:"column:attendance_record_school_id;type:uuid;not null;index" json:"attendance_record_school_id"`

	AttendanceRecordParticipantKind ParticipantKind `gorm:"column:attendance_record_participant_kind;type:varchar(10);not null;index:idx_attendance_record_unique,unique" json:"attendance_record_participant_kind"`
	AttendanceRecordParticipantID   uuid.UUID       `gorm:"column:attendance_record_participant_id;type:uuid;not null;index:idx_attendance_record_unique,unique" json:"attendance_record_participant_id"`
	AttendanceRecordSlotID          uuid.UUID       `gorm:"column:attendance_record_slot_id;type:uuid;not null;index:idx_attendance_record_unique,unique" json:"attendance_record_slot_id"`
	AttendanceRecordDate            time.Time       `gorm:"column:attendance_record_date;type:date;not null;index:idx_attendance_record_unique,unique" json:"attendance_record_date"`

	AttendanceRecordStatus AttendanceStatus `gorm:"column:attendance_record_status;type:varchar(16);not null" json:"attendance_record_status"`
	AttendanceRecordReason *string          `gorm:"column:attendance_record_reason;type:text" json:"attendance_record_reason,omitempty"`

	AttendanceRecordCheckedInAt *time.Time       `gorm:"column:attendance_record_checked_in_at;type:timestamptz" json:"attendance_record_checked_in_at,omitempty"`
	AttendanceRecordSource      AttendanceSource `gorm:"column:attendance_record_source;type:varchar(16);not null" json:"attendance_record_source"`

	// Snapshot slot saat tulis (mapel/guru/ruang) untuk tampilan historis
	AttendanceRecordSlotSnapshot datatypes.JSONMap `gorm:"column:attendance_record_slot_snapshot;type:jsonb" json:"attendance_record_slot_snapshot,omitempty"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;type:timestamptz;not null;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time      `gorm:"column:attendance_record_updated_at;type:timestamptz;not null;autoUpdateTime" json:"attendance_record_updated_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"attendance_record_deleted_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
