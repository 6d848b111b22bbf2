// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "sekolahku_backend/internals/features/school/schedules/dto"
	m "sekolahku_backend/internals/features/school/schedules/model"
	svc "sekolahku_backend/internals/features/school/schedules/service"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func schoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals("school_id").(string)
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, errors.New("school scope tidak ditemukan di token")
	}
	return uuid.Parse(s)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23P01 = exclusion_violation, 23503 = FK, 23505 = unique
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Bentrok jadwal: time range overlap."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

/* =========================
   Create schedule (template)
   ========================= */

func (ctl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CreateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Schedule.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	model := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&model).Error; err != nil {
		log.Printf("[Schedule.Create] DB error: %v", err)
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Jadwal dibuat", model)
}

/* =========================
   Activate (maks. satu aktif per kelas)
   ========================= */

func (ctl *ScheduleController) ActivateSchedule(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id tidak valid")
	}

	var sched m.ClassScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_schedule_id = ? AND class_schedule_school_id = ?", id, schoolID).
			First(&sched).Error; er != nil {
			return er
		}
		// matikan versi lain di kelas yang sama
		if er := tx.Model(&m.ClassScheduleModel{}).
			Where("class_schedule_class_id = ? AND class_schedule_id <> ?", sched.ClassScheduleClassID, id).
			Update("class_schedule_is_active", false).Error; er != nil {
			return er
		}
		return tx.Model(&sched).Update("class_schedule_is_active", true).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan")
		}
		log.Printf("[Schedule.Activate] TX error: %v", err)
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Jadwal diaktifkan", sched)
}

/* =========================
   Create slot + deteksi bentrok
   ========================= */

func (ctl *ScheduleController) CreateSlot(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	scheduleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id tidak valid")
	}

	var req d.CreateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Slot.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.TimeSlotScheduleID = scheduleID
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var conflicts []m.TimeSlotModel
	var slot m.TimeSlotModel

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var sched m.ClassScheduleModel
		if er := tx.Where("class_schedule_id = ? AND class_schedule_school_id = ?", scheduleID, schoolID).
			First(&sched).Error; er != nil {
			return er
		}

		s, er := req.ToModel(schoolID, sched.ClassScheduleClassID)
		if er != nil {
			return er
		}
		slot = s

		// Baca slot existing hari yang sama DI DALAM transaksi yang sama dengan
		// write-nya, supaya dua author paralel tidak saling kecolongan overlap.
		var existing []m.TimeSlotModel
		if er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("time_slot_schedule_id = ? AND time_slot_weekday = ?", scheduleID, slot.TimeSlotWeekday).
			Find(&existing).Error; er != nil {
			return er
		}
		if hits := svc.FindConflicts(slot, existing); len(hits) > 0 {
			conflicts = hits
			return svc.ErrScheduleConflict
		}
		return tx.Create(&slot).Error
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			return helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan")
		case errors.Is(txErr, d.ErrInvalidSlotTime):
			return helper.JsonError(c, http.StatusBadRequest, txErr.Error())
		case errors.Is(txErr, svc.ErrScheduleConflict):
			return helper.JsonErrorWithDetails(c, http.StatusConflict,
				"Bentrok jadwal: slot beririsan dengan slot lain di hari yang sama",
				fiber.Map{"conflicts": d.ToConflictResponses(conflicts)})
		default:
			log.Printf("[Slot.Create] TX error: %v", txErr)
			return writePGError(c, txErr)
		}
	}
	return helper.JsonCreated(c, "Slot jadwal dibuat", slot)
}

/* =========================
   Update slot (immutable setelah dipakai absensi)
   ========================= */

func (ctl *ScheduleController) UpdateSlot(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	slotID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id tidak valid")
	}

	var req d.UpdateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var conflicts []m.TimeSlotModel
	var slot m.TimeSlotModel

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("time_slot_id = ? AND time_slot_school_id = ?", slotID, schoolID).
			First(&slot).Error; er != nil {
			return er
		}

		if req.TouchesTimes() {
			var refs int64
			if er := tx.Table("attendance_records").
				Where("attendance_record_slot_id = ? AND attendance_record_deleted_at IS NULL", slotID).
				Count(&refs).Error; er != nil {
				return er
			}
			if refs > 0 {
				return errSlotReferenced
			}
		}

		if er := req.Apply(&slot); er != nil {
			return er
		}

		var existing []m.TimeSlotModel
		if er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("time_slot_schedule_id = ? AND time_slot_weekday = ?", slot.TimeSlotScheduleID, slot.TimeSlotWeekday).
			Find(&existing).Error; er != nil {
			return er
		}
		if hits := svc.FindConflicts(slot, existing); len(hits) > 0 {
			conflicts = hits
			return svc.ErrScheduleConflict
		}
		return tx.Save(&slot).Error
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			return helper.JsonError(c, http.StatusNotFound, "Slot tidak ditemukan")
		case errors.Is(txErr, errSlotReferenced):
			return helper.JsonError(c, http.StatusConflict,
				"Slot sudah dipakai catatan absensi; jam/hari tidak boleh diubah. Buat slot baru.")
		case errors.Is(txErr, d.ErrInvalidSlotTime):
			return helper.JsonError(c, http.StatusBadRequest, txErr.Error())
		case errors.Is(txErr, svc.ErrScheduleConflict):
			return helper.JsonErrorWithDetails(c, http.StatusConflict,
				"Bentrok jadwal: slot beririsan dengan slot lain di hari yang sama",
				fiber.Map{"conflicts": d.ToConflictResponses(conflicts)})
		default:
			log.Printf("[Slot.Update] TX error: %v", txErr)
			return writePGError(c, txErr)
		}
	}
	return helper.JsonUpdated(c, "Slot jadwal diperbarui", slot)
}

/* =========================
   Delete slot
   ========================= */

func (ctl *ScheduleController) DeleteSlot(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	slotID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id tidak valid")
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if er := tx.Table("attendance_records").
			Where("attendance_record_slot_id = ? AND attendance_record_deleted_at IS NULL", slotID).
			Count(&refs).Error; er != nil {
			return er
		}
		if refs > 0 {
			return errSlotReferenced
		}
		res := tx.Where("time_slot_id = ? AND time_slot_school_id = ?", slotID, schoolID).
			Delete(&m.TimeSlotModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			return helper.JsonError(c, http.StatusNotFound, "Slot tidak ditemukan")
		case errors.Is(txErr, errSlotReferenced):
			return helper.JsonError(c, http.StatusConflict,
				"Slot sudah dipakai catatan absensi; tidak boleh dihapus.")
		default:
			log.Printf("[Slot.Delete] TX error: %v", txErr)
			return writePGError(c, txErr)
		}
	}
	return helper.JsonDeleted(c, "Slot jadwal dihapus", fiber.Map{"time_slot_id": slotID})
}

/* =========================
   List slots (per hari / semua)
   ========================= */

func (ctl *ScheduleController) ListSlots(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	scheduleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id tidak valid")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Where("time_slot_schedule_id = ? AND time_slot_school_id = ?", scheduleID, schoolID)

	if wd := strings.TrimSpace(c.Query("weekday")); wd != "" {
		n, er := strconv.Atoi(wd)
		if er != nil || n < m.WeekdayMin || n > m.WeekdayMax {
			return helper.JsonError(c, http.StatusBadRequest, "weekday harus 1..7")
		}
		q = q.Where("time_slot_weekday = ?", n)
	}

	var slots []m.TimeSlotModel
	if err := q.Order("time_slot_weekday, time_slot_start_time").Find(&slots).Error; err != nil {
		log.Printf("[Slot.List] DB error: %v", err)
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", slots)
}

var errSlotReferenced = errors.New("slot direferensikan catatan absensi")
