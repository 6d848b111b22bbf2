// file: internals/features/school/schedules/model/class_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template mingguan ber-versi per kelas. Maksimal satu yang aktif per kelas
// (diatur lewat endpoint aktivasi, bukan lewat constraint tunggal).
type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `gorm:"column:class_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_schedule_id"`

	ClassScheduleSchoolID uuid.UUID `gorm:"column:class_schedule_school_id;type:uuid;not null;index" json:"class_schedule_school_id"`
	ClassScheduleClassID  uuid.UUID `gorm:"column:class_schedule_class_id;type:uuid;not null;index" json:"class_schedule_class_id"`

	ClassScheduleAcademicYear string `gorm:"column:class_schedule_academic_year;type:varchar(20);not null" json:"class_schedule_academic_year"`
	ClassScheduleIsActive     bool   `gorm:"column:class_schedule_is_active;not null;default:false" json:"class_schedule_is_active"`

	ClassScheduleCreatedAt time.Time      `gorm:"column:class_schedule_created_at;type:timestamptz;not null;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time      `gorm:"column:class_schedule_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_schedule_updated_at"`
	ClassScheduleDeletedAt gorm.DeletedAt `gorm:"column:class_schedule_deleted_at;index" json:"class_schedule_deleted_at,omitempty"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }
