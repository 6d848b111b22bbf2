// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attRoute "sekolahku_backend/internals/features/school/attendance/route"
	schedRoute "sekolahku_backend/internals/features/school/schedules/route"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== STAFF (guru/staf/admin) =====================
	// capture absensi, tutup sesi, authoring jadwal
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/staff",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorTeacher("absensi & jadwal"), constants.StaffAndAbove...),
	)
	attRoute.AttendanceTeacherRoutes(staff, db)
	schedRoute.ScheduleAdminRoutes(staff, db)

	// ===================== ADMIN =====================
	// pengaturan absensi (grace period, jam sekolah)
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles(constants.RoleErrorAdmin("pengaturan absensi"), constants.AdminOnly...),
	)
	attRoute.AttendanceAdminRoutes(admin, db)
}
