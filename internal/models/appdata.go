package models

// AppData is the aggregate root: one document holding every collection the
// planner works with. Snapshots are immutable by convention; every write
// produces a new value via Clone and hands it to the store.
type AppData struct {
	Subjects      []Subject      `json:"subjects"`
	Teachers      []Teacher      `json:"teachers"`
	Classes       []ClassGroup   `json:"classes"`
	Schedule      []ScheduleItem `json:"schedule"`
	Substitutions []Substitution `json:"substitutions"`
}

// Clone returns a deep copy safe to mutate before handing back to the store.
func (d *AppData) Clone() *AppData {
	next := &AppData{
		Subjects:      append([]Subject(nil), d.Subjects...),
		Teachers:      make([]Teacher, len(d.Teachers)),
		Classes:       append([]ClassGroup(nil), d.Classes...),
		Schedule:      append([]ScheduleItem(nil), d.Schedule...),
		Substitutions: append([]Substitution(nil), d.Substitutions...),
	}
	for i, t := range d.Teachers {
		t.SubjectIDs = append([]string(nil), t.SubjectIDs...)
		t.UnavailableDates = append([]string(nil), t.UnavailableDates...)
		next.Teachers[i] = t
	}
	return next
}

// SubjectByID resolves a subject reference, nil when dangling.
func (d *AppData) SubjectByID(id string) *Subject {
	for i := range d.Subjects {
		if d.Subjects[i].ID == id {
			return &d.Subjects[i]
		}
	}
	return nil
}

// TeacherByID resolves a teacher reference, nil when dangling.
func (d *AppData) TeacherByID(id string) *Teacher {
	for i := range d.Teachers {
		if d.Teachers[i].ID == id {
			return &d.Teachers[i]
		}
	}
	return nil
}

// ClassByID resolves a class reference, nil when dangling.
func (d *AppData) ClassByID(id string) *ClassGroup {
	for i := range d.Classes {
		if d.Classes[i].ID == id {
			return &d.Classes[i]
		}
	}
	return nil
}

// LessonByID resolves a schedule item reference, nil when dangling.
func (d *AppData) LessonByID(id string) *ScheduleItem {
	for i := range d.Schedule {
		if d.Schedule[i].ID == id {
			return &d.Schedule[i]
		}
	}
	return nil
}
