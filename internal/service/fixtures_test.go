package service

import (
	"testing"

	"github.com/gymplan/subplan-api/internal/models"
	"github.com/gymplan/subplan-api/internal/store"
)

// 2024-03-04 is a Monday, 2024-03-03 the preceding Sunday.
const (
	fixtureMonday = "2024-03-04"
	fixtureSunday = "2024-03-03"
)

type fixture struct {
	store        *store.Store
	timetable    *TimetableService
	absence      *AbsenceService
	substitution *SubstitutionService
	directory    *DirectoryService
}

// newFixture builds the full service stack over an in-memory store seeded
// with the default directory and a small Monday schedule:
//
//	m1: Пн, 1 смена, урок 1, 5А, Математика, Иванова
//	m2: Пн, 1 смена, урок 1, 5Б, Русский язык, Петров
//	m3: Пн, 2 смена, урок 2, 10А, История, Сидорова
//	m4: Пн, 1 смена, урок 3, 5А, Физика, Иванова
func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.New(nil, nil)
	data := store.Seed().Clone()
	data.Schedule = []models.ScheduleItem{
		{ID: "m1", Day: models.DayMonday, Shift: models.ShiftFirst, Period: 1, ClassID: "c1", SubjectID: "s1", TeacherID: "t1", RoomID: "204"},
		{ID: "m2", Day: models.DayMonday, Shift: models.ShiftFirst, Period: 1, ClassID: "c2", SubjectID: "s2", TeacherID: "t2"},
		{ID: "m3", Day: models.DayMonday, Shift: models.ShiftSecond, Period: 2, ClassID: "c3", SubjectID: "s5", TeacherID: "t3"},
		{ID: "m4", Day: models.DayMonday, Shift: models.ShiftFirst, Period: 3, ClassID: "c1", SubjectID: "s4", TeacherID: "t1"},
	}
	st.Replace(data)

	timetable := NewTimetableService(st, nil, nil)
	f := &fixture{
		store:        st,
		timetable:    timetable,
		absence:      NewAbsenceService(st, nil),
		substitution: NewSubstitutionService(st, timetable, nil, nil),
		directory:    NewDirectoryService(st, nil, nil),
	}
	return f
}
