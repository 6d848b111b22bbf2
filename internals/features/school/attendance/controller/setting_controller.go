// file: internals/features/school/attendance/controller/setting_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	d "sekolahku_backend/internals/features/school/attendance/dto"
	svc "sekolahku_backend/internals/features/school/attendance/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =========================
   Pengaturan absensi (grace period dkk.)
   ========================= */

func (ctl *AttendanceController) GetSetting(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	setting, err := ctl.Settings.Get(schoolID, nil)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", setting)
}

func (ctl *AttendanceController) UpdateSetting(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	setting := svc.DefaultSetting(schoolID)
	if current, er := ctl.Settings.Get(schoolID, nil); er == nil {
		setting = current
	}

	if req.AttendanceSettingGraceMinutes != nil {
		setting.AttendanceSettingGraceMinutes = *req.AttendanceSettingGraceMinutes
	}
	if req.AttendanceSettingSchoolStart != nil {
		t, er := dbtime.Parse(*req.AttendanceSettingSchoolStart)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "school_start harus format HH:mm")
		}
		setting.AttendanceSettingSchoolStart = t
	}
	if req.AttendanceSettingSchoolEnd != nil {
		t, er := dbtime.Parse(*req.AttendanceSettingSchoolEnd)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "school_end harus format HH:mm")
		}
		setting.AttendanceSettingSchoolEnd = t
	}
	if req.AttendanceSettingSchoolDays != nil {
		setting.AttendanceSettingSchoolDays = req.AttendanceSettingSchoolDays
	}
	if setting.AttendanceSettingSchoolStart.MinuteOfDay() >= setting.AttendanceSettingSchoolEnd.MinuteOfDay() {
		return helper.JsonError(c, http.StatusBadRequest, "jam sekolah tidak valid: start harus < end")
	}

	if err := ctl.Settings.Upsert(&setting); err != nil {
		log.Printf("[Attendance.Setting] Upsert error: %v", err)
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Pengaturan absensi disimpan", setting)
}
