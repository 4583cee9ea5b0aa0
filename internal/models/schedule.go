package models

// ScheduleItem represents one recurring weekly lesson slot. At most one item
// may exist per (ClassID, Day, Shift, Period); a teacher appearing twice at
// the same day/shift/period across classes is a detectable conflict, not a
// structural impossibility.
type ScheduleItem struct {
	ID        string    `json:"id"`
	Day       DayOfWeek `json:"day"`
	Shift     Shift     `json:"shift"`
	Period    int       `json:"period"`
	ClassID   string    `json:"class_id"`
	SubjectID string    `json:"subject_id"`
	TeacherID string    `json:"teacher_id"`
	RoomID    string    `json:"room_id,omitempty"`
}

// ScheduleConflict describes an existing lesson that collides with a
// proposed teacher placement.
type ScheduleConflict struct {
	ScheduleItemID string    `json:"schedule_item_id"`
	ClassID        string    `json:"class_id"`
	ClassName      string    `json:"class_name,omitempty"`
	SubjectID      string    `json:"subject_id"`
	TeacherID      string    `json:"teacher_id"`
	Day            DayOfWeek `json:"day"`
	Shift          Shift     `json:"shift"`
	Period         int       `json:"period"`
}

// ScheduleConflictError is returned when a placement collides with an
// existing lesson and the caller has not opted into the override.
type ScheduleConflictError struct {
	Message  string           `json:"message"`
	Conflict ScheduleConflict `json:"conflict"`
}

// Error implements the error interface for conflict errors.
func (e *ScheduleConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}
