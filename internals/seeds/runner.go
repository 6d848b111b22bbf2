// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	userModel "sekolahku_backend/internals/features/users/model"
)

// Run: migrasi skema + data demo. Dipanggil dari main kalau SEED=true.
// Aman dijalankan berulang (seed pakai cek-dulu / ON CONFLICT di level data).
func Run(db *gorm.DB) error {
	log.Println("🌱 Menjalankan migrasi & seeder...")

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&classModel.StudentModel{},
		&classModel.TeacherModel{},
		&classModel.ClassStudentModel{},
		&scheduleModel.ClassScheduleModel{},
		&scheduleModel.TimeSlotModel{},
		&attendanceModel.AttendanceRecordModel{},
		&attendanceModel.AttendanceSettingModel{},
	); err != nil {
		return err
	}
	log.Println("✅ Migrasi selesai")

	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedDemoSchool(db); err != nil {
		return err
	}

	log.Println("✅ Seeder selesai")
	return nil
}
