// file: internals/features/school/attendance/dto/status_labels.go
package dto

import (
	m "sekolahku_backend/internals/features/school/attendance/model"
)

// Peta label presentasi — SATU arah kebenaran untuk frontend (warna + label),
// dimiliki adapter presentasi, bukan engine. Engine cuma pernah mengeluarkan
// nilai kanonik.
type StatusLabel struct {
	Value   m.AttendanceStatus `json:"value"`
	LabelID string             `json:"label_id"` // Bahasa Indonesia
	LabelEN string             `json:"label_en"`
	Color   string             `json:"color"`
}

var statusLabels = map[m.AttendanceStatus]StatusLabel{
	m.StatusPresent:        {m.StatusPresent, "Hadir", "Present", "#16a34a"},
	m.StatusLate:           {m.StatusLate, "Terlambat", "Late", "#f59e0b"},
	m.StatusSick:           {m.StatusSick, "Sakit", "Sick", "#0ea5e9"},
	m.StatusExcused:        {m.StatusExcused, "Izin", "Excused", "#8b5cf6"},
	m.StatusAbsent:         {m.StatusAbsent, "Alfa", "Absent", "#dc2626"},
	m.StatusEarlyDeparture: {m.StatusEarlyDeparture, "Pulang", "Early departure", "#64748b"},
	m.StatusNoSchedule:     {m.StatusNoSchedule, "Tanpa jadwal", "No schedule", "#94a3b8"},
}

// LabelFor: label untuk satu nilai kanonik.
func LabelFor(s m.AttendanceStatus) (StatusLabel, bool) {
	l, ok := statusLabels[s]
	return l, ok
}

// AllStatusLabels: untuk endpoint vocabulary (dropdown/legend frontend).
func AllStatusLabels() []StatusLabel {
	order := []m.AttendanceStatus{
		m.StatusPresent, m.StatusLate, m.StatusSick, m.StatusExcused,
		m.StatusAbsent, m.StatusEarlyDeparture, m.StatusNoSchedule,
	}
	out := make([]StatusLabel, 0, len(order))
	for _, s := range order {
		out = append(out, statusLabels[s])
	}
	return out
}
