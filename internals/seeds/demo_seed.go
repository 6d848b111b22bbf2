// file: internals/seeds/demo_seed.go
package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/constants"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	userModel "sekolahku_backend/internals/features/users/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

// ID tetap supaya seeder idempoten dan gampang dipakai di Postman/tes manual.
var (
	demoSchoolID   = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	demoClassID    = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	demoTeacherID  = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	demoScheduleID = uuid.MustParse("44444444-4444-4444-8444-444444444444")

	demoStudentIDs = []uuid.UUID{
		uuid.MustParse("55555555-5555-4555-8555-555555555501"),
		uuid.MustParse("55555555-5555-4555-8555-555555555502"),
		uuid.MustParse("55555555-5555-4555-8555-555555555503"),
	}
)

func seedAdminUser(db *gorm.DB) error {
	pass := os.Getenv("SEED_ADMIN_PASSWORD")
	if pass == "" {
		pass = "admin12345"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserSchoolID: &demoSchoolID,
		UserEmail:    "admin@sekolahku.id",
		UserName:     "Admin Sekolah",
		UserPassword: string(hash),
		UserRole:     constants.RoleAdmin,
		UserIsActive: true,
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}},
		DoNothing: true,
	}).Create(&admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Println("👤 Admin dibuat: admin@sekolahku.id")
	}
	return nil
}

func seedDemoSchool(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{DoNothing: true})

		if err := insert.Create(&classModel.TeacherModel{
			TeacherID:       demoTeacherID,
			TeacherSchoolID: demoSchoolID,
			TeacherNIP:      "198703152010012001",
			TeacherName:     "Bu Ratna",
		}).Error; err != nil {
			return err
		}

		if err := insert.Create(&classModel.ClassModel{
			ClassID:                demoClassID,
			ClassSchoolID:          demoSchoolID,
			ClassName:              "7A",
			ClassGrade:             7,
			ClassHomeroomTeacherID: &demoTeacherID,
		}).Error; err != nil {
			return err
		}

		names := []string{"Ahmad Fauzi", "Siti Aminah", "Budi Santoso"}
		for i, id := range demoStudentIDs {
			if err := insert.Create(&classModel.StudentModel{
				StudentID:       id,
				StudentSchoolID: demoSchoolID,
				StudentNIS:      fmt.Sprintf("2024%04d", i+1),
				StudentName:     names[i],
			}).Error; err != nil {
				return err
			}
			if err := insert.Create(&classModel.ClassStudentModel{
				ClassStudentClassID:   demoClassID,
				ClassStudentStudentID: id,
				ClassStudentIsActive:  true,
			}).Error; err != nil {
				return err
			}
		}

		if err := insert.Create(&scheduleModel.ClassScheduleModel{
			ClassScheduleID:           demoScheduleID,
			ClassScheduleSchoolID:     demoSchoolID,
			ClassScheduleClassID:      demoClassID,
			ClassScheduleAcademicYear: "2026/2027",
			ClassScheduleIsActive:     true,
		}).Error; err != nil {
			return err
		}

		subj := "Matematika"
		slots := []scheduleModel.TimeSlotModel{
			{
				TimeSlotSchoolID:    demoSchoolID,
				TimeSlotScheduleID:  demoScheduleID,
				TimeSlotClassID:     demoClassID,
				TimeSlotWeekday:     1,
				TimeSlotStartTime:   dbtime.FromMinutes(7 * 60),
				TimeSlotEndTime:     dbtime.FromMinutes(8*60 + 30),
				TimeSlotTeacherID:   &demoTeacherID,
				TimeSlotSubjectName: &subj,
			},
			{
				TimeSlotSchoolID:   demoSchoolID,
				TimeSlotScheduleID: demoScheduleID,
				TimeSlotClassID:    demoClassID,
				TimeSlotWeekday:    1,
				TimeSlotStartTime:  dbtime.FromMinutes(8*60 + 30),
				TimeSlotEndTime:    dbtime.FromMinutes(10 * 60),
				TimeSlotTeacherID:  &demoTeacherID,
			},
		}
		var existing int64
		if err := tx.Model(&scheduleModel.TimeSlotModel{}).
			Where("time_slot_schedule_id = ?", demoScheduleID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing == 0 {
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}

		if err := insert.Create(&attendanceModel.AttendanceSettingModel{
			AttendanceSettingSchoolID:     demoSchoolID,
			AttendanceSettingGraceMinutes: 15,
			AttendanceSettingSchoolStart:  dbtime.FromMinutes(7 * 60),
			AttendanceSettingSchoolEnd:    dbtime.FromMinutes(15*60 + 30),
			AttendanceSettingSchoolDays:   pq.Int64Array{1, 2, 3, 4, 5},
		}).Error; err != nil {
			return err
		}

		log.Println("🏫 Data demo sekolah siap (kelas 7A + jadwal Senin)")
		return nil
	})
}
