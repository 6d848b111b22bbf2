// file: internals/features/school/classes/model/people_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index" json:"student_school_id"`

	StudentNIS  string `gorm:"column:student_nis;type:varchar(30);not null;uniqueIndex" json:"student_nis"`
	StudentName string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`

	TeacherNIP  string `gorm:"column:teacher_nip;type:varchar(30);not null;uniqueIndex" json:"teacher_nip"`
	TeacherName string `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
