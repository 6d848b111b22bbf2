// file: internals/features/school/schedules/dto/schedule_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/schedules/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =========================================================
   Helpers
   ========================================================= */

func parseTimeOfDay(s string) (dbtime.Tod, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dbtime.Tod{}, false
	}
	t, err := dbtime.Parse(s)
	if err != nil {
		return dbtime.Tod{}, false
	}
	return t, true
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateClassScheduleRequest struct {
	ClassScheduleClassID      uuid.UUID `json:"class_schedule_class_id" validate:"required"`
	ClassScheduleAcademicYear string    `json:"class_schedule_academic_year" validate:"required,max=20"`
}

// schoolID dipaksa dari controller (token), bukan dari body
func (r CreateClassScheduleRequest) ToModel(schoolID uuid.UUID) model.ClassScheduleModel {
	return model.ClassScheduleModel{
		ClassScheduleSchoolID:     schoolID,
		ClassScheduleClassID:      r.ClassScheduleClassID,
		ClassScheduleAcademicYear: strings.TrimSpace(r.ClassScheduleAcademicYear),
	}
}

type CreateTimeSlotRequest struct {
	TimeSlotScheduleID uuid.UUID `json:"time_slot_schedule_id" validate:"required"`
	TimeSlotWeekday    int       `json:"time_slot_weekday" validate:"required,min=1,max=7"`
	TimeSlotStartTime  string    `json:"time_slot_start_time" validate:"required"` // "HH:mm" / "HH:mm:ss"
	TimeSlotEndTime    string    `json:"time_slot_end_time" validate:"required"`

	TimeSlotSubjectID   *uuid.UUID `json:"time_slot_subject_id" validate:"omitempty"`
	TimeSlotSubjectName *string    `json:"time_slot_subject_name" validate:"omitempty,max=120"`
	TimeSlotTeacherID   *uuid.UUID `json:"time_slot_teacher_id" validate:"omitempty"`
	TimeSlotRoomLabel   *string    `json:"time_slot_room_label" validate:"omitempty,max=60"`
}

// ToModel memvalidasi invariant slot (start < end, weekday 1..7) sebelum DB.
func (r CreateTimeSlotRequest) ToModel(schoolID, classID uuid.UUID) (model.TimeSlotModel, error) {
	st, okS := parseTimeOfDay(r.TimeSlotStartTime)
	et, okE := parseTimeOfDay(r.TimeSlotEndTime)
	if !okS || !okE {
		return model.TimeSlotModel{}, ErrInvalidSlotTime
	}

	m := model.TimeSlotModel{
		TimeSlotSchoolID:    schoolID,
		TimeSlotScheduleID:  r.TimeSlotScheduleID,
		TimeSlotClassID:     classID,
		TimeSlotWeekday:     r.TimeSlotWeekday,
		TimeSlotStartTime:   st,
		TimeSlotEndTime:     et,
		TimeSlotSubjectID:   r.TimeSlotSubjectID,
		TimeSlotSubjectName: trimPtr(r.TimeSlotSubjectName),
		TimeSlotTeacherID:   r.TimeSlotTeacherID,
		TimeSlotRoomLabel:   trimPtr(r.TimeSlotRoomLabel),
	}
	if m.TimeSlotWeekday < model.WeekdayMin || m.TimeSlotWeekday > model.WeekdayMax ||
		m.StartMinute() >= m.EndMinute() {
		return model.TimeSlotModel{}, ErrInvalidSlotTime
	}
	return m, nil
}

// Hanya field non-waktu yang boleh di-update in-place; jam/hari lewat slot baru
// kalau slot sudah direferensikan attendance_records (dicek controller).
type UpdateTimeSlotRequest struct {
	TimeSlotWeekday   *int    `json:"time_slot_weekday" validate:"omitempty,min=1,max=7"`
	TimeSlotStartTime *string `json:"time_slot_start_time" validate:"omitempty"`
	TimeSlotEndTime   *string `json:"time_slot_end_time" validate:"omitempty"`

	TimeSlotSubjectID   *uuid.UUID `json:"time_slot_subject_id" validate:"omitempty"`
	TimeSlotSubjectName *string    `json:"time_slot_subject_name" validate:"omitempty,max=120"`
	TimeSlotTeacherID   *uuid.UUID `json:"time_slot_teacher_id" validate:"omitempty"`
	TimeSlotRoomLabel   *string    `json:"time_slot_room_label" validate:"omitempty,max=60"`
}

func (r UpdateTimeSlotRequest) TouchesTimes() bool {
	return r.TimeSlotWeekday != nil || r.TimeSlotStartTime != nil || r.TimeSlotEndTime != nil
}

// Apply menimpa field model dari request. Validasi invariant diulang sesudahnya.
func (r UpdateTimeSlotRequest) Apply(m *model.TimeSlotModel) error {
	if r.TimeSlotWeekday != nil {
		m.TimeSlotWeekday = *r.TimeSlotWeekday
	}
	if r.TimeSlotStartTime != nil {
		st, ok := parseTimeOfDay(*r.TimeSlotStartTime)
		if !ok {
			return ErrInvalidSlotTime
		}
		m.TimeSlotStartTime = st
	}
	if r.TimeSlotEndTime != nil {
		et, ok := parseTimeOfDay(*r.TimeSlotEndTime)
		if !ok {
			return ErrInvalidSlotTime
		}
		m.TimeSlotEndTime = et
	}
	if r.TimeSlotSubjectID != nil {
		m.TimeSlotSubjectID = r.TimeSlotSubjectID
	}
	if r.TimeSlotSubjectName != nil {
		m.TimeSlotSubjectName = trimPtr(r.TimeSlotSubjectName)
	}
	if r.TimeSlotTeacherID != nil {
		m.TimeSlotTeacherID = r.TimeSlotTeacherID
	}
	if r.TimeSlotRoomLabel != nil {
		m.TimeSlotRoomLabel = trimPtr(r.TimeSlotRoomLabel)
	}
	if m.TimeSlotWeekday < model.WeekdayMin || m.TimeSlotWeekday > model.WeekdayMax ||
		m.StartMinute() >= m.EndMinute() {
		return ErrInvalidSlotTime
	}
	return nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

// Ringkasan slot untuk payload 409 (operator perlu tahu bentrok dengan siapa)
type ConflictSlotResponse struct {
	TimeSlotID          uuid.UUID `json:"time_slot_id"`
	TimeSlotWeekday     int       `json:"time_slot_weekday"`
	TimeSlotStartTime   string    `json:"time_slot_start_time"`
	TimeSlotEndTime     string    `json:"time_slot_end_time"`
	TimeSlotSubjectName *string   `json:"time_slot_subject_name,omitempty"`
}

func ToConflictResponses(slots []model.TimeSlotModel) []ConflictSlotResponse {
	out := make([]ConflictSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, ConflictSlotResponse{
			TimeSlotID:          s.TimeSlotID,
			TimeSlotWeekday:     s.TimeSlotWeekday,
			TimeSlotStartTime:   s.TimeSlotStartTime.Format("15:04:05"),
			TimeSlotEndTime:     s.TimeSlotEndTime.Format("15:04:05"),
			TimeSlotSubjectName: s.TimeSlotSubjectName,
		})
	}
	return out
}
