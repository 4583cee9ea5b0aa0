package service

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/gymplan/subplan-api/internal/models"
	"github.com/gymplan/subplan-api/internal/store"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// parseDate interprets a plain YYYY-MM-DD calendar day. time.Parse pins the
// value to UTC midnight, so the weekday never shifts with the host timezone.
func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}
	return t, nil
}

// AbsenceService resolves dates into teaching days, tracks teacher absence
// marks and computes the lessons a set of absences affects.
type AbsenceService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewAbsenceService instantiates AbsenceService.
func NewAbsenceService(st *store.Store, logger *zap.Logger) *AbsenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AbsenceService{store: st, logger: logger}
}

// DayOfWeekFor maps a calendar date to a teaching day. The second return is
// false on Sunday, the day with no classes.
func (s *AbsenceService) DayOfWeekFor(date string) (models.DayOfWeek, bool, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", false, err
	}
	weekday := t.Weekday()
	if weekday == time.Sunday {
		return "", false, nil
	}
	return models.Days[int(weekday)-1], true, nil
}

// AbsentTeachers lists every teacher marked unavailable on the date, in
// directory order.
func (s *AbsenceService) AbsentTeachers(date string) ([]models.Teacher, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	data := s.store.Snapshot()
	absent := make([]models.Teacher, 0)
	for _, t := range data.Teachers {
		if t.UnavailableOn(date) {
			absent = append(absent, t)
		}
	}
	return absent, nil
}

// AffectedLessons returns every lesson on the date's weekday taught by an
// absent teacher, ordered by period ascending. extraTeacherID previews the
// impact of marking one more teacher absent without mutating any state. A
// no-school date yields an empty list.
func (s *AbsenceService) AffectedLessons(date, extraTeacherID string) ([]models.ScheduleItem, models.DayOfWeek, error) {
	day, schoolDay, err := s.DayOfWeekFor(date)
	if err != nil {
		return nil, "", err
	}
	if !schoolDay {
		return []models.ScheduleItem{}, "", nil
	}

	data := s.store.Snapshot()
	absentIDs := make(map[string]struct{})
	for _, t := range data.Teachers {
		if t.UnavailableOn(date) {
			absentIDs[t.ID] = struct{}{}
		}
	}
	if extraTeacherID != "" {
		absentIDs[extraTeacherID] = struct{}{}
	}

	affected := make([]models.ScheduleItem, 0)
	for _, item := range data.Schedule {
		if item.Day != day {
			continue
		}
		if _, ok := absentIDs[item.TeacherID]; ok {
			affected = append(affected, item)
		}
	}
	sort.SliceStable(affected, func(i, j int) bool {
		return affected[i].Period < affected[j].Period
	})
	return affected, day, nil
}

// ToggleAbsence flips the teacher's absence mark for the date: present marks
// are removed, missing ones appended. Substitutions already created for the
// date are intentionally left untouched.
func (s *AbsenceService) ToggleAbsence(teacherID, date string) (*models.Teacher, store.WriteResult, error) {
	if _, err := parseDate(date); err != nil {
		return nil, store.WriteResult{}, err
	}
	data := s.store.Snapshot()
	if data.TeacherByID(teacherID) == nil {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	next := data.Clone()
	var updated *models.Teacher
	for i := range next.Teachers {
		if next.Teachers[i].ID != teacherID {
			continue
		}
		t := &next.Teachers[i]
		if t.UnavailableOn(date) {
			kept := t.UnavailableDates[:0]
			for _, d := range t.UnavailableDates {
				if d != date {
					kept = append(kept, d)
				}
			}
			t.UnavailableDates = kept
		} else {
			t.UnavailableDates = append(t.UnavailableDates, date)
		}
		updated = t
		break
	}

	wr := s.store.Replace(next)
	return updated, wr, nil
}
