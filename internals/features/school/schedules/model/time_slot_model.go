// file: internals/features/school/schedules/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

// Weekday 1=Senin .. 7=Minggu (ISO-8601)
const (
	WeekdayMin = 1
	WeekdayMax = 7
)

/* =========================================
   Model: class_schedule_slots
========================================= */

// Satu jam pelajaran dalam template mingguan. Setelah direferensikan
// attendance_records, jam/hari tidak boleh diubah in-place (buat slot baru).
type TimeSlotModel struct {
	TimeSlotID uuid.UUID `gorm:"column:time_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"time_slot_id"`

	TimeSlotSchoolID   uuid.UUID `gorm:"column:time_slot_school_id;type:uuid;not null;index" json:"time_slot_school_id"`
	TimeSlotScheduleID uuid.UUID `gorm:"column:time_slot_schedule_id;type:uuid;not null;index" json:"time_slot_schedule_id"`
	TimeSlotClassID    uuid.UUID `gorm:"column:time_slot_class_id;type:uuid;not null;index:idx_time_slot_class_day" json:"time_slot_class_id"`

	TimeSlotWeekday   int        `gorm:"column:time_slot_weekday;not null;index:idx_time_slot_class_day" json:"time_slot_weekday"`
	TimeSlotStartTime dbtime.Tod `gorm:"column:time_slot_start_time;type:time;not null" json:"time_slot_start_time"`
	TimeSlotEndTime   dbtime.Tod `gorm:"column:time_slot_end_time;type:time;not null" json:"time_slot_end_time"`

	TimeSlotSubjectID *uuid.UUID `gorm:"column:time_slot_subject_id;type:uuid" json:"time_slot_subject_id,omitempty"`
	TimeSlotTeacherID *uuid.UUID `gorm:"column:time_slot_teacher_id;type:uuid" json:"time_slot_teacher_id,omitempty"`
	TimeSlotRoomLabel *string    `gorm:"column:time_slot_room_label;type:varchar(60)" json:"time_slot_room_label,omitempty"`

	// Nama mapel snapshot ringan untuk tampilan (denormalized, boleh kosong)
	TimeSlotSubjectName *string `gorm:"column:time_slot_subject_name;type:varchar(120)" json:"time_slot_subject_name,omitempty"`

	TimeSlotCreatedAt time.Time      `gorm:"column:time_slot_created_at;type:timestamptz;not null;autoCreateTime" json:"time_slot_created_at"`
	TimeSlotUpdatedAt time.Time      `gorm:"column:time_slot_updated_at;type:timestamptz;not null;autoUpdateTime" json:"time_slot_updated_at"`
	TimeSlotDeletedAt gorm.DeletedAt `gorm:"column:time_slot_deleted_at;index" json:"time_slot_deleted_at,omitempty"`
}

func (TimeSlotModel) TableName() string { return "class_schedule_slots" }

// StartMinute: menit-sejak-00:00 untuk aritmetika interval.
func (m TimeSlotModel) StartMinute() int { return m.TimeSlotStartTime.MinuteOfDay() }

// EndMinute: menit-sejak-00:00 (eksklusif, interval half-open).
func (m TimeSlotModel) EndMinute() int { return m.TimeSlotEndTime.MinuteOfDay() }
