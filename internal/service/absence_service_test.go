package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymplan/subplan-api/internal/models"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
)

func TestDayOfWeekFor(t *testing.T) {
	f := newFixture(t)

	day, schoolDay, err := f.absence.DayOfWeekFor(fixtureMonday)
	require.NoError(t, err)
	assert.True(t, schoolDay)
	assert.Equal(t, models.DayMonday, day)

	day, schoolDay, err = f.absence.DayOfWeekFor("2024-03-09")
	require.NoError(t, err)
	assert.True(t, schoolDay)
	assert.Equal(t, models.DaySaturday, day)

	_, schoolDay, err = f.absence.DayOfWeekFor(fixtureSunday)
	require.NoError(t, err)
	assert.False(t, schoolDay)

	_, _, err = f.absence.DayOfWeekFor("04.03.2024")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestToggleAbsenceRoundTrip(t *testing.T) {
	f := newFixture(t)

	teacher, _, err := f.absence.ToggleAbsence("t1", fixtureMonday)
	require.NoError(t, err)
	assert.True(t, teacher.UnavailableOn(fixtureMonday))

	teacher, _, err = f.absence.ToggleAbsence("t1", fixtureMonday)
	require.NoError(t, err)
	assert.False(t, teacher.UnavailableOn(fixtureMonday))
	assert.Empty(t, teacher.UnavailableDates)
}

func TestToggleAbsenceUnknownTeacher(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("missing", fixtureMonday)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestToggleAbsenceKeepsSubstitutions(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("t1", fixtureMonday)
	require.NoError(t, err)
	_, _, err = f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.NoError(t, err)

	// Clearing the mark leaves coverage records in place.
	_, _, err = f.absence.ToggleAbsence("t1", fixtureMonday)
	require.NoError(t, err)
	assert.Len(t, f.store.Snapshot().Substitutions, 1)
}

func TestAbsentTeachers(t *testing.T) {
	f := newFixture(t)

	absent, err := f.absence.AbsentTeachers(fixtureMonday)
	require.NoError(t, err)
	assert.Empty(t, absent)

	_, _, err = f.absence.ToggleAbsence("t2", fixtureMonday)
	require.NoError(t, err)
	_, _, err = f.absence.ToggleAbsence("t1", fixtureMonday)
	require.NoError(t, err)

	absent, err = f.absence.AbsentTeachers(fixtureMonday)
	require.NoError(t, err)
	require.Len(t, absent, 2)
	// Directory order, not toggle order.
	assert.Equal(t, "t1", absent[0].ID)
	assert.Equal(t, "t2", absent[1].ID)
}

func TestAffectedLessonsEmptyOnSunday(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("t1", fixtureSunday)
	require.NoError(t, err)

	lessons, day, err := f.absence.AffectedLessons(fixtureSunday, "")
	require.NoError(t, err)
	assert.Empty(t, lessons)
	assert.Equal(t, models.DayOfWeek(""), day)
}

func TestAffectedLessonsOrderedByPeriod(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("t1", fixtureMonday)
	require.NoError(t, err)

	lessons, day, err := f.absence.AffectedLessons(fixtureMonday, "")
	require.NoError(t, err)
	assert.Equal(t, models.DayMonday, day)
	require.Len(t, lessons, 2)
	assert.Equal(t, "m1", lessons[0].ID)
	assert.Equal(t, "m4", lessons[1].ID)
}

func TestAffectedLessonsPreviewTeacher(t *testing.T) {
	f := newFixture(t)

	// No one is marked absent; previewing Сидорова pulls in her lesson
	// without mutating any state.
	lessons, _, err := f.absence.AffectedLessons(fixtureMonday, "t3")
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "m3", lessons[0].ID)

	absent, err := f.absence.AbsentTeachers(fixtureMonday)
	require.NoError(t, err)
	assert.Empty(t, absent)
}

func TestAffectedLessonsPreviewAlreadyAbsent(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("t1", fixtureMonday)
	require.NoError(t, err)

	// Previewing an already-absent teacher must not duplicate lessons.
	lessons, _, err := f.absence.AffectedLessons(fixtureMonday, "t1")
	require.NoError(t, err)
	assert.Len(t, lessons, 2)
}
