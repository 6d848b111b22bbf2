// file: internals/features/school/schedules/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedctl "sekolahku_backend/internals/features/school/schedules/controller"
)

// ScheduleAdminRoutes: authoring jadwal (admin/staff/teacher lewat guard di index)
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schedctl.New(db, validator.New())

	grp := r.Group("/schedules")
	grp.Post("/", ctl.CreateSchedule)
	grp.Post("/:id/activate", ctl.ActivateSchedule)
	grp.Post("/:id/slots", ctl.CreateSlot)
	grp.Get("/:id/slots", ctl.ListSlots)

	slots := r.Group("/slots")
	slots.Patch("/:id", ctl.UpdateSlot)
	slots.Delete("/:id", ctl.DeleteSlot)
}
