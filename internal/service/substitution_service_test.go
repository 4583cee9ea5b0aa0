package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymplan/subplan-api/internal/models"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
)

func TestRankCandidatesBusyTeachersSinkToBottom(t *testing.T) {
	f := newFixture(t)

	// Slot Пн / 1 смена / 1: Иванова and Петров are both teaching there.
	ranked, err := f.substitution.RankCandidates(RankCandidatesRequest{
		Date:      fixtureMonday,
		Day:       string(models.DayMonday),
		Shift:     string(models.ShiftFirst),
		Period:    1,
		SubjectID: "s1",
	})
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "t3", ranked[0].Teacher.ID)
	assert.Equal(t, 0, ranked[0].Score)
	assert.True(t, ranked[0].CanTeach)

	// Иванова is busy but a specialist, so she outranks Петров.
	assert.Equal(t, "t1", ranked[1].Teacher.ID)
	assert.Equal(t, -90, ranked[1].Score)
	assert.True(t, ranked[1].IsBusy)
	assert.False(t, ranked[1].CanTeach)

	assert.Equal(t, "t2", ranked[2].Teacher.ID)
	assert.Equal(t, -100, ranked[2].Score)
	assert.False(t, ranked[2].CanTeach)
}

func TestRankCandidatesSpecialistsFirstStableWithinTier(t *testing.T) {
	f := newFixture(t)

	// Slot Пн / 1 смена / 5 is free for everyone; only Сидорова teaches s5.
	ranked, err := f.substitution.RankCandidates(RankCandidatesRequest{
		Date:      fixtureMonday,
		Day:       string(models.DayMonday),
		Shift:     string(models.ShiftFirst),
		Period:    5,
		SubjectID: "s5",
	})
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "t3", ranked[0].Teacher.ID)
	assert.Equal(t, 10, ranked[0].Score)
	assert.True(t, ranked[0].IsSpecialist)

	// Non-specialists keep directory order inside their tier.
	assert.Equal(t, "t1", ranked[1].Teacher.ID)
	assert.Equal(t, "t2", ranked[2].Teacher.ID)
	assert.Equal(t, 0, ranked[1].Score)
	assert.Equal(t, 0, ranked[2].Score)
}

func TestRankCandidatesAbsentSpecialist(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("t3", fixtureMonday)
	require.NoError(t, err)

	ranked, err := f.substitution.RankCandidates(RankCandidatesRequest{
		Date:      fixtureMonday,
		Day:       string(models.DayMonday),
		Shift:     string(models.ShiftFirst),
		Period:    5,
		SubjectID: "s5",
	})
	require.NoError(t, err)

	// Absence drops Сидорова below every available teacher despite the
	// specialist bonus.
	assert.Equal(t, "t1", ranked[0].Teacher.ID)
	assert.Equal(t, "t2", ranked[1].Teacher.ID)
	assert.Equal(t, "t3", ranked[2].Teacher.ID)
	assert.Equal(t, -90, ranked[2].Score)
	assert.True(t, ranked[2].IsAbsent)
}

func TestRankCandidatesValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.substitution.RankCandidates(RankCandidatesRequest{
		Date:      fixtureMonday,
		Day:       "Вс",
		Shift:     string(models.ShiftFirst),
		Period:    1,
		SubjectID: "s1",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAssignCreatesRecord(t *testing.T) {
	f := newFixture(t)

	sub, _, err := f.substitution.Assign(AssignRequest{
		LessonID:             "m1",
		Date:                 fixtureMonday,
		ReplacementTeacherID: "t3",
		Note:                 "замена по болезни",
	})
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "m1", sub.ScheduleItemID)
	assert.Equal(t, "t1", sub.OriginalTeacherID)
	require.NotNil(t, sub.ReplacementTeacherID)
	assert.Equal(t, "t3", *sub.ReplacementTeacherID)
	assert.Len(t, f.store.Snapshot().Substitutions, 1)
}

func TestAssignUpsertsKeepingID(t *testing.T) {
	f := newFixture(t)

	first, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.NoError(t, err)

	second, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t2", Force: true})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "t2", *second.ReplacementTeacherID)
	assert.Len(t, f.store.Snapshot().Substitutions, 1)
}

func TestAssignRejectsAbsentReplacement(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("t3", fixtureMonday)
	require.NoError(t, err)

	_, _, err = f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTeacherUnavailable.Code, appErrors.FromError(err).Code)
	assert.Empty(t, f.store.Snapshot().Substitutions)
}

func TestAssignRejectsBusyReplacement(t *testing.T) {
	f := newFixture(t)

	// Петров teaches m2 in the same slot as m1.
	_, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t2"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTeacherUnavailable.Code, appErrors.FromError(err).Code)
}

func TestAssignForceOverridesEligibility(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.absence.ToggleAbsence("t3", fixtureMonday)
	require.NoError(t, err)

	sub, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3", Force: true})
	require.NoError(t, err)
	assert.Equal(t, "t3", *sub.ReplacementTeacherID)
}

func TestAssignRejectsSunday(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureSunday, ReplacementTeacherID: "t3"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNoSchoolDay.Code, appErrors.FromError(err).Code)
}

func TestAssignUnknownLesson(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.substitution.Assign(AssignRequest{LessonID: "missing", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUnassignRemovesRecord(t *testing.T) {
	f := newFixture(t)

	sub, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.NoError(t, err)

	_, err = f.substitution.Unassign(sub.ID)
	require.NoError(t, err)
	assert.Empty(t, f.store.Snapshot().Substitutions)

	_, err = f.substitution.Unassign(sub.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestListForDateOrdersByShiftThenPeriod(t *testing.T) {
	f := newFixture(t)

	// m3 is second shift and would sort first by raw period; shift wins.
	_, _, err := f.substitution.Assign(AssignRequest{LessonID: "m3", Date: fixtureMonday, ReplacementTeacherID: "t1"})
	require.NoError(t, err)
	_, _, err = f.substitution.Assign(AssignRequest{LessonID: "m4", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.NoError(t, err)
	_, _, err = f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.NoError(t, err)

	details, err := f.substitution.ListForDate(fixtureMonday)
	require.NoError(t, err)
	require.Len(t, details, 3)
	assert.Equal(t, "m1", details[0].ScheduleItemID)
	assert.Equal(t, "m4", details[1].ScheduleItemID)
	assert.Equal(t, "m3", details[2].ScheduleItemID)

	assert.Equal(t, "5А", details[0].ClassName)
	assert.Equal(t, "Математика", details[0].SubjectName)
	assert.Equal(t, "Иванова А.А.", details[0].OriginalName)
	assert.Equal(t, "Сидорова В.В.", details[0].ReplacementName)
}

func TestListForDateSkipsDeletedLesson(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.NoError(t, err)

	_, err = f.timetable.DeleteLesson("m1")
	require.NoError(t, err)

	details, err := f.substitution.ListForDate(fixtureMonday)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestListForDateDanglingTeacherResolvesEmpty(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.substitution.Assign(AssignRequest{LessonID: "m1", Date: fixtureMonday, ReplacementTeacherID: "t3"})
	require.NoError(t, err)

	next := f.store.Snapshot().Clone()
	kept := next.Teachers[:0]
	for _, teacher := range next.Teachers {
		if teacher.ID != "t3" {
			kept = append(kept, teacher)
		}
	}
	next.Teachers = kept
	f.store.Replace(next)

	details, err := f.substitution.ListForDate(fixtureMonday)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Empty(t, details[0].ReplacementName)
	assert.Equal(t, "Иванова А.А.", details[0].OriginalName)
}
