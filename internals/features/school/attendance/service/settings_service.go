// file: internals/features/school/attendance/service/settings_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	m "sekolahku_backend/internals/features/school/attendance/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

// ================== SETTINGS ==================

const DefaultGraceMinutes = 15

type SettingsService struct {
	DB *gorm.DB
}

func NewSettings(db *gorm.DB) *SettingsService { return &SettingsService{DB: db} }

// DefaultSetting: dipakai kalau sekolah belum punya baris settings.
func DefaultSetting(schoolID uuid.UUID) m.AttendanceSettingModel {
	start, _ := dbtime.Parse("07:00")
	end, _ := dbtime.Parse("15:30")
	return m.AttendanceSettingModel{
		AttendanceSettingSchoolID:     schoolID,
		AttendanceSettingGraceMinutes: configs.GetEnvInt("ATTENDANCE_GRACE_MINUTES", DefaultGraceMinutes),
		AttendanceSettingSchoolStart:  start,
		AttendanceSettingSchoolEnd:    end,
		AttendanceSettingSchoolDays:   []int64{1, 2, 3, 4, 5},
	}
}

// Get settings by school; tx boleh nil → pakai s.DB. Baris tidak ada = default
// (bukan error), mengikuti pola "row if present, defaults otherwise".
func (s *SettingsService) Get(schoolID uuid.UUID, tx *gorm.DB) (m.AttendanceSettingModel, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}
	var row m.AttendanceSettingModel
	err := db.Where("attendance_setting_school_id = ?", schoolID).
		Limit(1).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultSetting(schoolID), nil
	}
	if err != nil {
		return m.AttendanceSettingModel{}, err
	}
	if row.AttendanceSettingGraceMinutes < 0 {
		row.AttendanceSettingGraceMinutes = 0
	}
	return row, nil
}

// Upsert: satu baris per sekolah.
func (s *SettingsService) Upsert(setting *m.AttendanceSettingModel) error {
	var existing m.AttendanceSettingModel
	err := s.DB.Where("attendance_setting_school_id = ?", setting.AttendanceSettingSchoolID).
		Limit(1).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(setting).Error
	}
	if err != nil {
		return err
	}
	setting.AttendanceSettingID = existing.AttendanceSettingID
	return s.DB.Model(&existing).Updates(map[string]any{
		"attendance_setting_grace_minutes": setting.AttendanceSettingGraceMinutes,
		"attendance_setting_school_start":  setting.AttendanceSettingSchoolStart,
		"attendance_setting_school_end":    setting.AttendanceSettingSchoolEnd,
		"attendance_setting_school_days":   setting.AttendanceSettingSchoolDays,
	}).Error
}
