package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/schedules/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

func TestCreateTimeSlotRequestToModel(t *testing.T) {
	schoolID := uuid.New()
	classID := uuid.New()
	scheduleID := uuid.New()

	base := CreateTimeSlotRequest{
		TimeSlotScheduleID: scheduleID,
		TimeSlotWeekday:    1,
		TimeSlotStartTime:  "07:00",
		TimeSlotEndTime:    "08:30",
	}

	t.Run("valid", func(t *testing.T) {
		m, err := base.ToModel(schoolID, classID)
		if err != nil {
			t.Fatalf("ToModel() error = %v", err)
		}
		if m.TimeSlotSchoolID != schoolID || m.TimeSlotClassID != classID {
			t.Error("school/class id must come from parameters, not body")
		}
		if m.StartMinute() != 7*60 || m.EndMinute() != 8*60+30 {
			t.Errorf("times = %d..%d", m.StartMinute(), m.EndMinute())
		}
	})

	t.Run("trims name fields to nil", func(t *testing.T) {
		empty := "   "
		r := base
		r.TimeSlotSubjectName = &empty
		r.TimeSlotRoomLabel = &empty
		m, err := r.ToModel(schoolID, classID)
		if err != nil {
			t.Fatalf("ToModel() error = %v", err)
		}
		if m.TimeSlotSubjectName != nil || m.TimeSlotRoomLabel != nil {
			t.Error("whitespace-only strings should become nil")
		}
	})

	invalid := []struct {
		name   string
		mutate func(*CreateTimeSlotRequest)
	}{
		{"zero length", func(r *CreateTimeSlotRequest) { r.TimeSlotEndTime = "07:00" }},
		{"end before start", func(r *CreateTimeSlotRequest) { r.TimeSlotStartTime = "09:00" }},
		{"weekday 0", func(r *CreateTimeSlotRequest) { r.TimeSlotWeekday = 0 }},
		{"weekday 8", func(r *CreateTimeSlotRequest) { r.TimeSlotWeekday = 8 }},
		{"garbage start", func(r *CreateTimeSlotRequest) { r.TimeSlotStartTime = "pagi" }},
		{"empty end", func(r *CreateTimeSlotRequest) { r.TimeSlotEndTime = "" }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.mutate(&r)
			if _, err := r.ToModel(schoolID, classID); !errors.Is(err, ErrInvalidSlotTime) {
				t.Errorf("ToModel() err = %v, want ErrInvalidSlotTime", err)
			}
		})
	}
}

func TestUpdateTimeSlotRequest(t *testing.T) {
	existing := func() model.TimeSlotModel {
		st, _ := dbtime.Parse("07:00")
		et, _ := dbtime.Parse("08:30")
		return model.TimeSlotModel{
			TimeSlotID:        uuid.New(),
			TimeSlotWeekday:   1,
			TimeSlotStartTime: st,
			TimeSlotEndTime:   et,
		}
	}

	t.Run("touches times detection", func(t *testing.T) {
		wd := 2
		st := "08:00"
		if (UpdateTimeSlotRequest{}).TouchesTimes() {
			t.Error("empty request must not touch times")
		}
		if !(UpdateTimeSlotRequest{TimeSlotWeekday: &wd}).TouchesTimes() {
			t.Error("weekday change touches times")
		}
		if !(UpdateTimeSlotRequest{TimeSlotStartTime: &st}).TouchesTimes() {
			t.Error("start change touches times")
		}
		name := "IPA"
		if (UpdateTimeSlotRequest{TimeSlotSubjectName: &name}).TouchesTimes() {
			t.Error("subject rename must not count as a time change")
		}
	})

	t.Run("apply shifts times", func(t *testing.T) {
		m := existing()
		st, et := "09:00", "10:30"
		r := UpdateTimeSlotRequest{TimeSlotStartTime: &st, TimeSlotEndTime: &et}
		if err := r.Apply(&m); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if m.StartMinute() != 9*60 || m.EndMinute() != 10*60+30 {
			t.Errorf("times = %d..%d", m.StartMinute(), m.EndMinute())
		}
	})

	t.Run("apply rejects inverted result", func(t *testing.T) {
		m := existing()
		st := "09:00" // end stays 08:30
		r := UpdateTimeSlotRequest{TimeSlotStartTime: &st}
		if err := r.Apply(&m); !errors.Is(err, ErrInvalidSlotTime) {
			t.Errorf("Apply() err = %v, want ErrInvalidSlotTime", err)
		}
	})
}

func TestToConflictResponses(t *testing.T) {
	st, _ := dbtime.Parse("07:00")
	et, _ := dbtime.Parse("08:30")
	subj := "Fisika"
	in := []model.TimeSlotModel{{
		TimeSlotID:          uuid.New(),
		TimeSlotWeekday:     3,
		TimeSlotStartTime:   st,
		TimeSlotEndTime:     et,
		TimeSlotSubjectName: &subj,
	}}
	out := ToConflictResponses(in)
	if len(out) != 1 {
		t.Fatalf("got %d responses", len(out))
	}
	if out[0].TimeSlotStartTime != "07:00:00" || out[0].TimeSlotEndTime != "08:30:00" {
		t.Errorf("times = %q..%q", out[0].TimeSlotStartTime, out[0].TimeSlotEndTime)
	}
	if out[0].TimeSlotSubjectName == nil || *out[0].TimeSlotSubjectName != subj {
		t.Error("subject name lost")
	}
	if got := ToConflictResponses(nil); len(got) != 0 {
		t.Errorf("nil input should yield empty slice, got %d", len(got))
	}
}
