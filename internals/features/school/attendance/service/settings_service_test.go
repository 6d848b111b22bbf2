package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestDefaultSetting(t *testing.T) {
	schoolID := uuid.New()
	s := DefaultSetting(schoolID)

	if s.AttendanceSettingSchoolID != schoolID {
		t.Error("school id not carried over")
	}
	if s.AttendanceSettingGraceMinutes != DefaultGraceMinutes {
		t.Errorf("grace = %d, want %d", s.AttendanceSettingGraceMinutes, DefaultGraceMinutes)
	}
	if s.AttendanceSettingSchoolStart.MinuteOfDay() != 7*60 {
		t.Errorf("school start = %d minutes", s.AttendanceSettingSchoolStart.MinuteOfDay())
	}
	if s.AttendanceSettingSchoolEnd.MinuteOfDay() != 15*60+30 {
		t.Errorf("school end = %d minutes", s.AttendanceSettingSchoolEnd.MinuteOfDay())
	}
	if len(s.AttendanceSettingSchoolDays) != 5 || s.AttendanceSettingSchoolDays[0] != 1 {
		t.Errorf("school days = %v, want Mon..Fri", s.AttendanceSettingSchoolDays)
	}
}

func TestDefaultSettingGraceOverride(t *testing.T) {
	t.Setenv("ATTENDANCE_GRACE_MINUTES", "10")
	s := DefaultSetting(uuid.New())
	if s.AttendanceSettingGraceMinutes != 10 {
		t.Errorf("grace = %d, want env override 10", s.AttendanceSettingGraceMinutes)
	}
}
