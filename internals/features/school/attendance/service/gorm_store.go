// file: internals/features/school/attendance/service/gorm_store.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	slotModel "sekolahku_backend/internals/features/school/schedules/model"
)

/* =========================
   GORM RecordStore
========================= */

type GormRecordStore struct {
	DB *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore { return &GormRecordStore{DB: db} }

func (s *GormRecordStore) FindForSlotDate(ctx context.Context, slotID uuid.UUID, date time.Time) ([]m.AttendanceRecordModel, error) {
	var records []m.AttendanceRecordModel
	err := s.DB.WithContext(ctx).
		Where("attendance_record_slot_id = ? AND attendance_record_date = ?", slotID, date.Format("2006-01-02")).
		Find(&records).Error
	return records, err
}

// BulkInsertIfAbsent: satu transaksi, ON CONFLICT DO NOTHING pada unique index
// (kind, participant, slot, date). Gagal di tengah → seluruh batch rollback;
// duplikat karena closure paralel → dilewati diam-diam.
func (s *GormRecordStore) BulkInsertIfAbsent(ctx context.Context, records []m.AttendanceRecordModel) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	var inserted int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(&records, 200)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	return inserted, err
}

/* =========================
   GORM RosterProvider
========================= */

type GormRosterProvider struct {
	DB *gorm.DB
}

func NewGormRosterProvider(db *gorm.DB) *GormRosterProvider { return &GormRosterProvider{DB: db} }

// RosterForSlot: student → semua siswa aktif kelas pemilik slot;
// teacher → guru yang dipasang di slot. Tempat satu-satunya yang bercabang
// pada ParticipantKind.
func (p *GormRosterProvider) RosterForSlot(ctx context.Context, slot slotModel.TimeSlotModel, kind m.ParticipantKind) ([]uuid.UUID, error) {
	switch kind {
	case m.ParticipantTeacher:
		if slot.TimeSlotTeacherID == nil {
			return nil, ErrRosterUnavailable
		}
		return []uuid.UUID{*slot.TimeSlotTeacherID}, nil

	case m.ParticipantStudent:
		var ids []uuid.UUID
		err := p.DB.WithContext(ctx).
			Model(&classModel.ClassStudentModel{}).
			Where("class_student_class_id = ? AND class_student_is_active = TRUE", slot.TimeSlotClassID).
			Pluck("class_student_student_id", &ids).Error
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, ErrRosterUnavailable
		}
		return ids, nil

	default:
		return nil, ErrRosterUnavailable
	}
}
