package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gymplan/subplan-api/internal/models"
	"github.com/gymplan/subplan-api/internal/store"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
)

// Candidate annotates one teacher with the three facts the ranking is built
// on. CanTeach is the eligibility gate the caller must honour before
// assigning; ineligible candidates stay in the list for visibility.
type Candidate struct {
	Teacher      models.Teacher `json:"teacher"`
	IsAbsent     bool           `json:"is_absent"`
	IsBusy       bool           `json:"is_busy"`
	IsSpecialist bool           `json:"is_specialist"`
	CanTeach     bool           `json:"can_teach"`
	Score        int            `json:"score"`
}

// RankCandidatesRequest identifies the lesson slot needing coverage.
type RankCandidatesRequest struct {
	Date      string `json:"date" validate:"required"`
	Day       string `json:"day" validate:"required"`
	Shift     string `json:"shift" validate:"required"`
	Period    int    `json:"period" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`
}

// AssignRequest creates or updates replacement coverage for one lesson on
// one date. Force acknowledges assigning an absent or busy teacher anyway.
type AssignRequest struct {
	LessonID             string `json:"lesson_id" validate:"required"`
	Date                 string `json:"date" validate:"required"`
	ReplacementTeacherID string `json:"replacement_teacher_id" validate:"required"`
	Note                 string `json:"note"`
	Force                bool   `json:"force"`
}

// SubstitutionService ranks replacement candidates and maintains the
// substitution records.
type SubstitutionService struct {
	store     *store.Store
	timetable *TimetableService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubstitutionService instantiates SubstitutionService.
func NewSubstitutionService(st *store.Store, timetable *TimetableService, validate *validator.Validate, logger *zap.Logger) *SubstitutionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubstitutionService{store: st, timetable: timetable, validator: validate, logger: logger}
}

// RankCandidates scores every teacher in the directory for the slot. Three
// tiers fall out of the scoring: available specialists (10), available
// non-specialists (0), absent or busy teachers (-100/-90). The sort is
// stable, so directory order is preserved inside a tier.
func (s *SubstitutionService) RankCandidates(req RankCandidatesRequest) ([]Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid candidate query")
	}
	if _, err := parseDate(req.Date); err != nil {
		return nil, err
	}
	day, ok := models.ParseDay(req.Day)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day %q", req.Day))
	}
	shift, ok := models.ParseShift(req.Shift)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown shift %q", req.Shift))
	}
	if !models.ValidPeriod(req.Period) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("period must be between %d and %d", models.MinPeriod, models.MaxPeriod))
	}

	data := s.store.Snapshot()
	candidates := make([]Candidate, 0, len(data.Teachers))
	for _, teacher := range data.Teachers {
		isAbsent := teacher.UnavailableOn(req.Date)
		isBusy := s.timetable.HasConflict(teacher.ID, day, shift, req.Period, "")
		isSpecialist := teacher.Teaches(req.SubjectID)

		score := 0
		if isAbsent || isBusy {
			score -= 100
		}
		if isSpecialist {
			score += 10
		}

		candidates = append(candidates, Candidate{
			Teacher:      teacher,
			IsAbsent:     isAbsent,
			IsBusy:       isBusy,
			IsSpecialist: isSpecialist,
			CanTeach:     !isAbsent && !isBusy,
			Score:        score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, nil
}

// Assign upserts the substitution for (lesson, date): an existing record is
// updated in place keeping its id, otherwise a new one is created with the
// lesson's current teacher captured as the original. An absent or busy
// replacement is rejected unless Force is set.
func (s *SubstitutionService) Assign(req AssignRequest) (*models.Substitution, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid substitution payload")
	}
	t, err := parseDate(req.Date)
	if err != nil {
		return nil, store.WriteResult{}, err
	}

	data := s.store.Snapshot()
	lesson := data.LessonByID(req.LessonID)
	if lesson == nil {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	if data.TeacherByID(req.ReplacementTeacherID) == nil {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "replacement teacher not found")
	}
	if t.Weekday() == time.Sunday {
		return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrNoSchoolDay, "")
	}

	if !req.Force {
		replacement := data.TeacherByID(req.ReplacementTeacherID)
		if replacement.UnavailableOn(req.Date) {
			return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrTeacherUnavailable, "replacement teacher is marked absent on this date")
		}
		if s.timetable.HasConflict(req.ReplacementTeacherID, lesson.Day, lesson.Shift, lesson.Period, "") {
			return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrTeacherUnavailable, "replacement teacher already has a lesson at this slot")
		}
	}

	next := data.Clone()
	replacementID := req.ReplacementTeacherID
	record := models.Substitution{
		ID:                   s.store.NewID(),
		Date:                 req.Date,
		ScheduleItemID:       req.LessonID,
		OriginalTeacherID:    lesson.TeacherID,
		ReplacementTeacherID: &replacementID,
		Note:                 req.Note,
	}

	updated := false
	for i := range next.Substitutions {
		if next.Substitutions[i].ScheduleItemID == req.LessonID && next.Substitutions[i].Date == req.Date {
			record.ID = next.Substitutions[i].ID
			next.Substitutions[i] = record
			updated = true
			break
		}
	}
	if !updated {
		next.Substitutions = append(next.Substitutions, record)
	}

	wr := s.store.Replace(next)
	return &record, wr, nil
}

// Unassign removes the substitution record entirely.
func (s *SubstitutionService) Unassign(id string) (store.WriteResult, error) {
	data := s.store.Snapshot()
	found := false
	for _, sub := range data.Substitutions {
		if sub.ID == id {
			found = true
			break
		}
	}
	if !found {
		return store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "substitution not found")
	}

	next := data.Clone()
	kept := next.Substitutions[:0]
	for _, sub := range next.Substitutions {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	next.Substitutions = kept
	return s.store.Replace(next), nil
}

// ListForDate joins the date's substitutions with the schedule and the
// directory, ordered by shift then period so exported output is reproducible
// for identical input. Substitutions whose lesson was deleted are skipped;
// other dangling references resolve to empty names.
func (s *SubstitutionService) ListForDate(date string) ([]models.SubstitutionDetail, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	data := s.store.Snapshot()
	details := make([]models.SubstitutionDetail, 0)
	for _, sub := range data.Substitutions {
		if sub.Date != date {
			continue
		}
		lesson := data.LessonByID(sub.ScheduleItemID)
		if lesson == nil {
			continue
		}
		detail := models.SubstitutionDetail{
			Substitution: sub,
			Day:          lesson.Day,
			Shift:        lesson.Shift,
			Period:       lesson.Period,
			RoomID:       lesson.RoomID,
		}
		if cls := data.ClassByID(lesson.ClassID); cls != nil {
			detail.ClassName = cls.Name
		}
		if subject := data.SubjectByID(lesson.SubjectID); subject != nil {
			detail.SubjectName = subject.Name
		}
		if teacher := data.TeacherByID(sub.OriginalTeacherID); teacher != nil {
			detail.OriginalName = teacher.Name
		}
		if sub.ReplacementTeacherID != nil {
			if teacher := data.TeacherByID(*sub.ReplacementTeacherID); teacher != nil {
				detail.ReplacementName = teacher.Name
			}
		}
		details = append(details, detail)
	}
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Shift != details[j].Shift {
			return details[i].Shift.Order() < details[j].Shift.Order()
		}
		return details[i].Period < details[j].Period
	})
	return details, nil
}
