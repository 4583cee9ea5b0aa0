package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymplan/subplan-api/internal/models"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
)

func TestLessonAtReturnsUniqueMatch(t *testing.T) {
	f := newFixture(t)

	lesson := f.timetable.LessonAt("c1", models.DayMonday, models.ShiftFirst, 1)
	require.NotNil(t, lesson)
	assert.Equal(t, "m1", lesson.ID)

	assert.Nil(t, f.timetable.LessonAt("c1", models.DayMonday, models.ShiftFirst, 2))
	assert.Nil(t, f.timetable.LessonAt("c1", models.DayTuesday, models.ShiftFirst, 1))
	assert.Nil(t, f.timetable.LessonAt("c1", models.DayMonday, models.ShiftSecond, 1))
}

func TestLessonsOfOrdersByPeriodThenShift(t *testing.T) {
	f := newFixture(t)

	// Add a second-shift lesson for Иванова at the same period as m1 to
	// exercise the shift tie-break.
	data := f.store.Snapshot().Clone()
	data.Schedule = append(data.Schedule, models.ScheduleItem{
		ID: "m5", Day: models.DayMonday, Shift: models.ShiftSecond, Period: 1, ClassID: "c3", SubjectID: "s1", TeacherID: "t1",
	})
	f.store.Replace(data)

	lessons := f.timetable.LessonsOf("t1", models.DayMonday)
	require.Len(t, lessons, 3)
	assert.Equal(t, "m1", lessons[0].ID)
	assert.Equal(t, "m5", lessons[1].ID)
	assert.Equal(t, "m4", lessons[2].ID)
}

func TestHasConflictExactMatchOnly(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.timetable.HasConflict("t1", models.DayMonday, models.ShiftFirst, 1, ""))

	// Changing any one field makes it a non-conflict.
	assert.False(t, f.timetable.HasConflict("t2", models.DayMonday, models.ShiftFirst, 2, ""))
	assert.False(t, f.timetable.HasConflict("t1", models.DayTuesday, models.ShiftFirst, 1, ""))
	assert.False(t, f.timetable.HasConflict("t1", models.DayMonday, models.ShiftSecond, 1, ""))
	assert.False(t, f.timetable.HasConflict("t3", models.DayMonday, models.ShiftFirst, 1, ""))
}

func TestHasConflictExcludesSelfWhenEditing(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.timetable.HasConflict("t1", models.DayMonday, models.ShiftFirst, 1, "m1"))
	assert.True(t, f.timetable.HasConflict("t1", models.DayMonday, models.ShiftFirst, 1, "m2"))
}

func TestSetLessonUpsertsGridCell(t *testing.T) {
	f := newFixture(t)

	before := len(f.store.Snapshot().Schedule)
	lesson, wr, err := f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c1", Day: "Пн", Shift: "1 смена", Period: 1,
		SubjectID: "s5", TeacherID: "t3",
	})
	require.NoError(t, err)
	assert.True(t, wr.Persisted)

	// Cell stays unique: the previous occupant is replaced, keeping its id.
	assert.Equal(t, before, len(f.store.Snapshot().Schedule))
	assert.Equal(t, "m1", lesson.ID)
	assert.Equal(t, "t3", lesson.TeacherID)
}

func TestSetLessonRejectsTeacherConflictWithoutForce(t *testing.T) {
	f := newFixture(t)

	// Петров already teaches 5Б at Monday/first/1.
	_, _, err := f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c3", Day: "Пн", Shift: "1 смена", Period: 1,
		SubjectID: "s2", TeacherID: "t2",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	var conflictErr *models.ScheduleConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, "m2", conflictErr.Conflict.ScheduleItemID)
	assert.Equal(t, "5Б", conflictErr.Conflict.ClassName)

	// The pending write left no side effects.
	assert.Nil(t, f.timetable.LessonAt("c3", models.DayMonday, models.ShiftFirst, 1))
}

func TestSetLessonForceOverridesConflict(t *testing.T) {
	f := newFixture(t)

	lesson, _, err := f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c3", Day: "Пн", Shift: "1 смена", Period: 1,
		SubjectID: "s2", TeacherID: "t2", Force: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "t2", lesson.TeacherID)

	// The double booking now exists and stays detectable.
	assert.True(t, f.timetable.HasConflict("t2", models.DayMonday, models.ShiftFirst, 1, lesson.ID))
}

func TestSetLessonSelfEditDoesNotConflict(t *testing.T) {
	f := newFixture(t)

	// Re-saving the same cell with the same teacher must not trip the
	// advisory on its own lesson.
	lesson, _, err := f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c1", Day: "Пн", Shift: "1 смена", Period: 1,
		SubjectID: "s1", TeacherID: "t1", RoomID: "301",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", lesson.ID)
	assert.Equal(t, "301", lesson.RoomID)
}

func TestSetLessonValidation(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c1", Day: "Пн", Shift: "1 смена", Period: 1, SubjectID: "s1",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, _, err = f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c1", Day: "Вс", Shift: "1 смена", Period: 1, SubjectID: "s1", TeacherID: "t1",
	})
	require.Error(t, err)

	_, _, err = f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c1", Day: "Пн", Shift: "1 смена", Period: 9, SubjectID: "s1", TeacherID: "t1",
	})
	require.Error(t, err)

	// References must resolve against the directory.
	_, _, err = f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c1", Day: "Пн", Shift: "1 смена", Period: 2, SubjectID: "s9", TeacherID: "t1",
	})
	require.Error(t, err)

	_, _, err = f.timetable.SetLesson(SetLessonRequest{
		ClassID: "c1", Day: "Пн", Shift: "1 смена", Period: 2, SubjectID: "s1", TeacherID: "t9",
	})
	require.Error(t, err)
}

func TestDeleteLesson(t *testing.T) {
	f := newFixture(t)

	_, err := f.timetable.DeleteLesson("m1")
	require.NoError(t, err)
	assert.Nil(t, f.timetable.LessonAt("c1", models.DayMonday, models.ShiftFirst, 1))

	_, err = f.timetable.DeleteLesson("m1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
