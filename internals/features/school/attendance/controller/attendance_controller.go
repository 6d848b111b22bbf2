// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "sekolahku_backend/internals/features/school/attendance/dto"
	m "sekolahku_backend/internals/features/school/attendance/model"
	svc "sekolahku_backend/internals/features/school/attendance/service"
	slotModel "sekolahku_backend/internals/features/school/schedules/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Settings *svc.SettingsService
	Closer   *svc.Closer
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: v,
		Settings: svc.NewSettings(db),
		Closer:   svc.NewCloser(svc.NewGormRosterProvider(db), svc.NewGormRecordStore(db)),
	}
}

/* =========================
   Helpers
   ========================= */

func schoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals("school_id").(string)
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, errors.New("school scope tidak ditemukan di token")
	}
	return uuid.Parse(s)
}

func (ctl *AttendanceController) loadSlot(c *fiber.Ctx, schoolID, slotID uuid.UUID) (slotModel.TimeSlotModel, error) {
	var slot slotModel.TimeSlotModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("time_slot_id = ? AND time_slot_school_id = ?", slotID, schoolID).
		First(&slot).Error
	return slot, err
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "Data duplikat (unique violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   Check-in (resolusi otomatis)
   ========================= */

func (ctl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Attendance.CheckIn] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	kind, date, checkedInAt, err := req.Parse()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	slot, err := ctl.loadSlot(c, schoolID, req.AttendanceSlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Slot tidak ditemukan")
		}
		return writePGError(c, err)
	}

	setting, err := ctl.Settings.Get(schoolID, nil)
	if err != nil {
		return writePGError(c, err)
	}

	var record m.AttendanceRecordModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing m.AttendanceRecordModel
		er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(`attendance_record_participant_kind = ? AND attendance_record_participant_id = ?
			       AND attendance_record_slot_id = ? AND attendance_record_date = ?`,
				kind, req.AttendanceParticipantID, req.AttendanceSlotID, date.Format("2006-01-02")).
			First(&existing).Error

		switch {
		case er == nil && existing.AttendanceRecordSource == m.SourceManual:
			// entry manual otoritatif — check-in tidak menimpanya
			record = existing
			return nil

		case er == nil:
			status, _ := svc.Resolve(svc.ResolveInput{
				Slot:         slot,
				Date:         date,
				CheckedInAt:  &checkedInAt,
				GraceMinutes: setting.AttendanceSettingGraceMinutes,
			})
			existing.AttendanceRecordStatus = status
			existing.AttendanceRecordCheckedInAt = &checkedInAt
			existing.AttendanceRecordSource = m.SourceAutomatic
			record = existing
			return tx.Save(&existing).Error

		case errors.Is(er, gorm.ErrRecordNotFound):
			status, _ := svc.Resolve(svc.ResolveInput{
				Slot:         slot,
				Date:         date,
				CheckedInAt:  &checkedInAt,
				GraceMinutes: setting.AttendanceSettingGraceMinutes,
			})
			record = m.AttendanceRecordModel{
				AttendanceRecordSchoolID:        schoolID,
				AttendanceRecordParticipantKind: kind,
				AttendanceRecordParticipantID:   req.AttendanceParticipantID,
				AttendanceRecordSlotID:          req.AttendanceSlotID,
				AttendanceRecordDate:            date,
				AttendanceRecordStatus:          status,
				AttendanceRecordCheckedInAt:     &checkedInAt,
				AttendanceRecordSource:          m.SourceAutomatic,
				AttendanceRecordSlotSnapshot:    svc.SlotSnapshot(slot),
			}
			return tx.Create(&record).Error

		default:
			return er
		}
	})
	if txErr != nil {
		log.Printf("[Attendance.CheckIn] TX error: %v", txErr)
		return writePGError(c, txErr)
	}

	label, _ := d.LabelFor(record.AttendanceRecordStatus)
	return helper.JsonOK(c, "Check-in tercatat", fiber.Map{
		"record": record,
		"label":  label,
	})
}

/* =========================
   Entry manual (guru/staf)
   ========================= */

func (ctl *AttendanceController) SetManualStatus(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.ManualStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	kind, date, status, err := req.Parse()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	slot, err := ctl.loadSlot(c, schoolID, req.AttendanceSlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Slot tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var record m.AttendanceRecordModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing m.AttendanceRecordModel
		er := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(`attendance_record_participant_kind = ? AND attendance_record_participant_id = ?
			       AND attendance_record_slot_id = ? AND attendance_record_date = ?`,
				kind, req.AttendanceParticipantID, req.AttendanceSlotID, date.Format("2006-01-02")).
			First(&existing).Error

		switch {
		case er == nil:
			existing.AttendanceRecordStatus = status
			existing.AttendanceRecordReason = req.AttendanceReason
			existing.AttendanceRecordSource = m.SourceManual
			record = existing
			return tx.Save(&existing).Error

		case errors.Is(er, gorm.ErrRecordNotFound):
			record = m.AttendanceRecordModel{
				AttendanceRecordSchoolID:        schoolID,
				AttendanceRecordParticipantKind: kind,
				AttendanceRecordParticipantID:   req.AttendanceParticipantID,
				AttendanceRecordSlotID:          req.AttendanceSlotID,
				AttendanceRecordDate:            date,
				AttendanceRecordStatus:          status,
				AttendanceRecordReason:          req.AttendanceReason,
				AttendanceRecordSource:          m.SourceManual,
				AttendanceRecordSlotSnapshot:    svc.SlotSnapshot(slot),
			}
			return tx.Create(&record).Error

		default:
			return er
		}
	})
	if txErr != nil {
		log.Printf("[Attendance.Manual] TX error: %v", txErr)
		return writePGError(c, txErr)
	}

	label, _ := d.LabelFor(record.AttendanceRecordStatus)
	return helper.JsonUpdated(c, "Status absensi disimpan", fiber.Map{
		"record": record,
		"label":  label,
	})
}

/* =========================
   Tutup sesi (auto-alfa)
   ========================= */

func (ctl *AttendanceController) CloseSession(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CloseSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	kind, date, err := req.Parse()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	slot, err := ctl.loadSlot(c, schoolID, req.AttendanceSlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Slot tidak ditemukan")
		}
		return writePGError(c, err)
	}

	report, err := ctl.Closer.CloseSession(c.UserContext(), slot, date, kind)
	if err != nil {
		if errors.Is(err, svc.ErrRosterUnavailable) {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
		log.Printf("[Attendance.Close] error: %v", err)
		return writePGError(c, err)
	}

	msg := fmt.Sprintf("%d ditandai alfa, %d sudah punya catatan", report.Created, report.AlreadyRecorded)
	return helper.JsonOK(c, msg, report)
}

/* =========================
   Tampilan sesi (roster × records)
   ========================= */

func (ctl *AttendanceController) GetSession(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	slotID, err := uuid.Parse(strings.TrimSpace(c.Query("slot_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "slot_id tidak valid")
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("date")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date harus format YYYY-MM-DD")
	}
	kind := m.ParticipantKind(strings.ToLower(strings.TrimSpace(c.Query("participant_kind", "student"))))
	if !kind.Valid() {
		return helper.JsonError(c, http.StatusBadRequest, d.ErrBadParticipant.Error())
	}

	slot, err := ctl.loadSlot(c, schoolID, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Slot tidak ditemukan")
		}
		return writePGError(c, err)
	}

	roster, err := ctl.Closer.Roster.RosterForSlot(c.UserContext(), slot, kind)
	if err != nil {
		if errors.Is(err, svc.ErrRosterUnavailable) {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
		return writePGError(c, err)
	}

	records, err := ctl.Closer.Store.FindForSlotDate(c.UserContext(), slotID, date)
	if err != nil {
		return writePGError(c, err)
	}
	byParticipant := make(map[uuid.UUID]m.AttendanceRecordModel, len(records))
	for _, r := range records {
		if r.AttendanceRecordParticipantKind == kind {
			byParticipant[r.AttendanceRecordParticipantID] = r
		}
	}

	view := d.SessionViewResponse{
		SlotID: slotID,
		Date:   date.Format("2006-01-02"),
		Kind:   kind,
	}
	for _, pid := range roster {
		entry := d.SessionEntryResponse{ParticipantID: pid}
		if rec, ok := byParticipant[pid]; ok {
			r := rec
			entry.Record = &r
			entry.Status = &r.AttendanceRecordStatus
			if label, okL := d.LabelFor(r.AttendanceRecordStatus); okL {
				entry.Label = &label
			}
			view.Recorded++
		} else {
			// unset ≠ alfa: peserta tanpa record tampil "-" sampai closure
			view.Unrecorded++
		}
		view.Entries = append(view.Entries, entry)
	}
	return helper.JsonOK(c, "ok", view)
}

/* =========================
   Rekap (dashboard/ekspor)
   ========================= */

func (ctl *AttendanceController) Recap(c *fiber.Ctx) error {
	schoolID, err := schoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	from, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("from")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "from harus format YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("to")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "to harus format YYYY-MM-DD")
	}
	if to.Before(from) {
		return helper.JsonError(c, http.StatusBadRequest, "to harus >= from")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.AttendanceRecordModel{}).
		Where("attendance_record_school_id = ?", schoolID).
		Where("attendance_record_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02"))

	if classStr := strings.TrimSpace(c.Query("class_id")); classStr != "" {
		classID, er := uuid.Parse(classStr)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Joins("JOIN class_schedule_slots ON class_schedule_slots.time_slot_id = attendance_records.attendance_record_slot_id").
			Where("class_schedule_slots.time_slot_class_id = ?", classID)
	}
	if kindStr := strings.TrimSpace(c.Query("participant_kind")); kindStr != "" {
		kind := m.ParticipantKind(strings.ToLower(kindStr))
		if !kind.Valid() {
			return helper.JsonError(c, http.StatusBadRequest, d.ErrBadParticipant.Error())
		}
		q = q.Where("attendance_record_participant_kind = ?", kind)
	}

	var rows []d.RecapRow
	if err := q.Select("attendance_record_status AS status, COUNT(*) AS count").
		Group("attendance_record_status").
		Scan(&rows).Error; err != nil {
		log.Printf("[Attendance.Recap] DB error: %v", err)
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

/* =========================
   Vocabulary (legend frontend)
   ========================= */

func (ctl *AttendanceController) StatusVocabulary(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", d.AllStatusLabels())
}
