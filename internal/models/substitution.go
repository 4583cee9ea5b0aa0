package models

// Substitution records replacement coverage for one lesson on one concrete
// date. At most one record may exist per (ScheduleItemID, Date); reassigning
// updates the existing record in place, keeping its ID.
type Substitution struct {
	ID                   string  `json:"id"`
	Date                 string  `json:"date"`
	ScheduleItemID       string  `json:"schedule_item_id"`
	OriginalTeacherID    string  `json:"original_teacher_id"`
	ReplacementTeacherID *string `json:"replacement_teacher_id"`
	Note                 string  `json:"note,omitempty"`
}

// SubstitutionDetail joins a substitution with the directory names the
// export and list views need. Dangling references resolve to empty names
// rather than failing.
type SubstitutionDetail struct {
	Substitution
	Day             DayOfWeek `json:"day"`
	Shift           Shift     `json:"shift"`
	Period          int       `json:"period"`
	ClassName       string    `json:"class_name"`
	SubjectName     string    `json:"subject_name"`
	OriginalName    string    `json:"original_teacher_name"`
	ReplacementName string    `json:"replacement_teacher_name"`
	RoomID          string    `json:"room_id,omitempty"`
}
