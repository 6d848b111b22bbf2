// file: internals/features/school/attendance/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attctl "sekolahku_backend/internals/features/school/attendance/controller"
	"sekolahku_backend/internals/middlewares"
)

// AttendanceTeacherRoutes: capture + closure + tampilan sesi (guru/staf/admin)
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attctl.New(db, validator.New())

	grp := r.Group("/attendance")
	grp.Post("/check-in", ctl.CheckIn)
	grp.Put("/manual", ctl.SetManualStatus)
	grp.Post("/close", middlewares.ClosureRateLimiter(), ctl.CloseSession)
	grp.Get("/session", ctl.GetSession)
	grp.Get("/recap", ctl.Recap)
	grp.Get("/statuses", ctl.StatusVocabulary)
}

// AttendanceAdminRoutes: pengaturan absensi (admin only lewat guard di index)
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attctl.New(db, validator.New())

	grp := r.Group("/attendance/settings")
	grp.Get("/", ctl.GetSetting)
	grp.Put("/", ctl.UpdateSetting)
}
