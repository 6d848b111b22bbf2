// file: internals/features/school/schedules/service/conflict_service.go
package service

import (
	"errors"

	model "sekolahku_backend/internals/features/school/schedules/model"
)

var ErrInvalidTimeSlot = errors.New("invalid time slot: start must be before end and weekday in 1..7")

// ValidateSlot: invariant level Time-Slot Model. Slot zero-length tidak pernah
// sampai ke pengecekan bentrok.
func ValidateSlot(s model.TimeSlotModel) error {
	if s.TimeSlotWeekday < model.WeekdayMin || s.TimeSlotWeekday > model.WeekdayMax {
		return ErrInvalidTimeSlot
	}
	if s.StartMinute() >= s.EndMinute() {
		return ErrInvalidTimeSlot
	}
	return nil
}

// overlaps: interval half-open [start, end). Back-to-back (end == start) BUKAN bentrok.
func overlaps(a, b model.TimeSlotModel) bool {
	return a.StartMinute() < b.EndMinute() && b.StartMinute() < a.EndMinute()
}

// FindConflicts mengembalikan semua slot existing (hari yang sama) yang beririsan
// dengan kandidat — untuk feedback operator (bukan cuma bool).
func FindConflicts(candidate model.TimeSlotModel, existing []model.TimeSlotModel) []model.TimeSlotModel {
	var hits []model.TimeSlotModel
	for _, e := range existing {
		if e.TimeSlotID == candidate.TimeSlotID {
			continue // re-validasi slot yang sudah tersimpan
		}
		if e.TimeSlotWeekday != candidate.TimeSlotWeekday {
			continue
		}
		if overlaps(candidate, e) {
			hits = append(hits, e)
		}
	}
	return hits
}

// HasConflict: versi bool dari FindConflicts.
func HasConflict(candidate model.TimeSlotModel, existing []model.TimeSlotModel) bool {
	return len(FindConflicts(candidate, existing)) > 0
}

// ValidateDay: cek pairwise seluruh ScheduleDay. Idempoten: hari yang sudah valid
// menghasilkan nil. Return pasangan pertama yang bentrok untuk pesan error.
func ValidateDay(slots []model.TimeSlotModel) (a, b *model.TimeSlotModel, err error) {
	for i := range slots {
		if e := ValidateSlot(slots[i]); e != nil {
			return &slots[i], nil, e
		}
	}
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].TimeSlotWeekday != slots[j].TimeSlotWeekday {
				continue
			}
			if overlaps(slots[i], slots[j]) {
				return &slots[i], &slots[j], ErrScheduleConflict
			}
		}
	}
	return nil, nil, nil
}

var ErrScheduleConflict = errors.New("schedule conflict: time slots overlap")
