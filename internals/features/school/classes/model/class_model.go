// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index" json:"class_school_id"`

	ClassName  string `gorm:"column:class_name;type:varchar(80);not null" json:"class_name"`
	ClassGrade int    `gorm:"column:class_grade;not null" json:"class_grade"`

	// wali kelas (opsional)
	ClassHomeroomTeacherID *uuid.UUID `gorm:"column:class_homeroom_teacher_id;type:uuid" json:"class_homeroom_teacher_id,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// Enrollment aktif siswa di kelas (satu siswa satu kelas aktif)
type ClassStudentModel struct {
	ClassStudentID        uuid.UUID `gorm:"column:class_student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_student_id"`
	ClassStudentClassID   uuid.UUID `gorm:"column:class_student_class_id;type:uuid;not null;index:idx_class_student_unique,unique" json:"class_student_class_id"`
	ClassStudentStudentID uuid.UUID `gorm:"column:class_student_student_id;type:uuid;not null;index:idx_class_student_unique,unique" json:"class_student_student_id"`

	ClassStudentIsActive bool `gorm:"column:class_student_is_active;not null;default:true" json:"class_student_is_active"`

	ClassStudentCreatedAt time.Time      `gorm:"column:class_student_created_at;type:timestamptz;not null;autoCreateTime" json:"class_student_created_at"`
	ClassStudentDeletedAt gorm.DeletedAt `gorm:"column:class_student_deleted_at;index" json:"class_student_deleted_at,omitempty"`
}

func (ClassStudentModel) TableName() string { return "class_students" }
