package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher, staff, atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
		RoleTeacher,
		RoleStudent,
	}

	// Boleh mengelola jadwal & menutup absensi
	StaffAndAbove = []string{
		RoleAdmin,
		RoleStaff,
		RoleTeacher,
	}

	AdminOnly = []string{RoleAdmin}
)
