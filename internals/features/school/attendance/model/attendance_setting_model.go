// file: internals/features/school/attendance/model/attendance_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

// Pengaturan absensi per sekolah (satu baris per sekolah; default dipakai
// kalau baris belum ada — lihat settings service).
type AttendanceSettingModel struct {
	AttendanceSettingID       uuid.UUID `gorm:"column:attendance_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_setting_id"`
	AttendanceSettingSchoolID uuid.UUID `gorm:"column:attendance_setting_school_id;type:uuid;not null;uniqueIndex" json:"attendance_setting_school_id"`

	// Toleransi keterlambatan (menit) setelah jam mulai slot
	AttendanceSettingGraceMinutes int `gorm:"column:attendance_setting_grace_minutes;not null;default:15" json:"attendance_setting_grace_minutes"`

	// Jam resmi sekolah
	AttendanceSettingSchoolStart dbtime.Tod `gorm:"column:attendance_setting_school_start;type:time;not null;default:'07:00:00'" json:"attendance_setting_school_start"`
	AttendanceSettingSchoolEnd   dbtime.Tod `gorm:"column:attendance_setting_school_end;type:time;not null;default:'15:30:00'" json:"attendance_setting_school_end"`

	// Hari sekolah (1=Senin .. 7=Minggu)
	AttendanceSettingSchoolDays pq.Int64Array `gorm:"column:attendance_setting_school_days;type:int[]" json:"attendance_setting_school_days"`

	AttendanceSettingCreatedAt time.Time      `gorm:"column:attendance_setting_created_at;type:timestamptz;not null;autoCreateTime" json:"attendance_setting_created_at"`
	AttendanceSettingUpdatedAt time.Time      `gorm:"column:attendance_setting_updated_at;type:timestamptz;not null;autoUpdateTime" json:"attendance_setting_updated_at"`
	AttendanceSettingDeletedAt gorm.DeletedAt `gorm:"column:attendance_setting_deleted_at;index" json:"attendance_setting_deleted_at,omitempty"`
}

func (AttendanceSettingModel) TableName() string { return "attendance_settings" }
