package service

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gymplan/subplan-api/internal/models"
	"github.com/gymplan/subplan-api/internal/store"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
)

// SetLessonRequest describes a grid-cell edit. The cell is addressed by
// class/day/shift/period; Force acknowledges an advisory teacher conflict.
type SetLessonRequest struct {
	ClassID   string `json:"class_id" validate:"required"`
	Day       string `json:"day" validate:"required"`
	Shift     string `json:"shift" validate:"required"`
	Period    int    `json:"period" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`
	TeacherID string `json:"teacher_id" validate:"required"`
	RoomID    string `json:"room_id"`
	Force     bool   `json:"force"`
}

// TimetableService owns the weekly grid: lookups, conflict detection and
// cell edits. All reads run over the live snapshot; nothing is cached
// across edits.
type TimetableService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService instantiates TimetableService.
func NewTimetableService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{store: st, validator: validate, logger: logger}
}

// LessonAt returns the unique lesson in a grid cell, nil when empty.
func (s *TimetableService) LessonAt(classID string, day models.DayOfWeek, shift models.Shift, period int) *models.ScheduleItem {
	data := s.store.Snapshot()
	for i := range data.Schedule {
		item := &data.Schedule[i]
		if item.ClassID == classID && item.Day == day && item.Shift == shift && item.Period == period {
			return item
		}
	}
	return nil
}

// LessonsOf lists everything a teacher teaches on a day across both shifts,
// ordered by period ascending with the first shift breaking ties.
func (s *TimetableService) LessonsOf(teacherID string, day models.DayOfWeek) []models.ScheduleItem {
	data := s.store.Snapshot()
	lessons := make([]models.ScheduleItem, 0)
	for _, item := range data.Schedule {
		if item.TeacherID == teacherID && item.Day == day {
			lessons = append(lessons, item)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].Period != lessons[j].Period {
			return lessons[i].Period < lessons[j].Period
		}
		return lessons[i].Shift.Order() < lessons[j].Shift.Order()
	})
	return lessons
}

// Grid lists all lessons for one day and shift, ordered for display.
func (s *TimetableService) Grid(day models.DayOfWeek, shift models.Shift) []models.ScheduleItem {
	data := s.store.Snapshot()
	lessons := make([]models.ScheduleItem, 0)
	for _, item := range data.Schedule {
		if item.Day == day && item.Shift == shift {
			lessons = append(lessons, item)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].ClassID != lessons[j].ClassID {
			return lessons[i].ClassID < lessons[j].ClassID
		}
		return lessons[i].Period < lessons[j].Period
	})
	return lessons
}

// HasConflict reports whether the teacher already has a lesson at exactly
// this day/shift/period, ignoring the optionally excluded item (used when
// re-editing a slot so it does not conflict with itself). Partial matches
// never count.
func (s *TimetableService) HasConflict(teacherID string, day models.DayOfWeek, shift models.Shift, period int, excludeID string) bool {
	return s.findTeacherConflict(teacherID, day, shift, period, excludeID) != nil
}

func (s *TimetableService) findTeacherConflict(teacherID string, day models.DayOfWeek, shift models.Shift, period int, excludeID string) *models.ScheduleItem {
	data := s.store.Snapshot()
	for i := range data.Schedule {
		item := &data.Schedule[i]
		if item.ID == excludeID {
			continue
		}
		if item.TeacherID == teacherID && item.Day == day && item.Shift == shift && item.Period == period {
			return item
		}
	}
	return nil
}

// SetLesson upserts the grid cell. A teacher double booking is advisory:
// without Force the edit is rejected with the conflicting lesson attached so
// the caller can confirm; with Force the placement proceeds.
func (s *TimetableService) SetLesson(req SetLessonRequest) (*models.ScheduleItem, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	day, ok := models.ParseDay(req.Day)
	if !ok {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day %q", req.Day))
	}
	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown shift %q", req.Shift))
	}
	if !models.ValidPeriod(req.Period) {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("period must be between %d and %d", models.MinPeriod, models.MaxPeriod))
	}

	data := s.store.Snapshot()
	if data.ClassByID(req.ClassID) == nil {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown class %q", req.ClassID))
	}
	if data.SubjectByID(req.SubjectID) == nil {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown subject %q", req.SubjectID))
	}
	if data.TeacherByID(req.TeacherID) == nil {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown teacher %q", req.TeacherID))
	}

	existing := s.LessonAt(req.ClassID, day, shift, req.Period)
	excludeID := ""
	if existing != nil {
		excludeID = existing.ID
	}

	if conflict := s.findTeacherConflict(req.TeacherID, day, shift, req.Period, excludeID); conflict != nil && !req.Force {
		className := ""
		if cls := data.ClassByID(conflict.ClassID); cls != nil {
			className = cls.Name
		}
		domainErr := &models.ScheduleConflictError{
			Message: "teacher already has a lesson at this slot",
			Conflict: models.ScheduleConflict{
				ScheduleItemID: conflict.ID,
				ClassID:        conflict.ClassID,
				ClassName:      className,
				SubjectID:      conflict.SubjectID,
				TeacherID:      conflict.TeacherID,
				Day:            conflict.Day,
				Shift:          conflict.Shift,
				Period:         conflict.Period,
			},
		}
		return nil, store.WriteResult{}, appErrors.Wrap(domainErr, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "schedule conflict: teacher already busy at this slot")
	}

	next := data.Clone()
	kept := next.Schedule[:0]
	for _, item := range next.Schedule {
		if item.ClassID == req.ClassID && item.Day == day && item.Shift == shift && item.Period == req.Period {
			continue
		}
		kept = append(kept, item)
	}
	next.Schedule = kept

	lesson := models.ScheduleItem{
		ID:        s.store.NewID(),
		Day:       day,
		Shift:     shift,
		Period:    req.Period,
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		TeacherID: req.TeacherID,
		RoomID:    req.RoomID,
	}
	if existing != nil {
		lesson.ID = existing.ID
	}
	next.Schedule = append(next.Schedule, lesson)

	wr := s.store.Replace(next)
	return &lesson, wr, nil
}

// DeleteLesson removes a lesson from the grid. Substitutions referencing it
// are left in place and resolve as dangling on display.
func (s *TimetableService) DeleteLesson(id string) (store.WriteResult, error) {
	data := s.store.Snapshot()
	if data.LessonByID(id) == nil {
		return store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	next := data.Clone()
	kept := next.Schedule[:0]
	for _, item := range next.Schedule {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	next.Schedule = kept
	return s.store.Replace(next), nil
}
