package models

// ClassGroup represents a cohort of students following one timetable.
type ClassGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
