package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gymplan/subplan-api/internal/models"
	"github.com/gymplan/subplan-api/internal/store"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
)

// SubjectRequest creates or updates a subject.
type SubjectRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// TeacherRequest creates or updates a teacher record.
type TeacherRequest struct {
	Name        string   `json:"name" validate:"required"`
	SubjectIDs  []string `json:"subject_ids"`
	ContactInfo *string  `json:"contact_info"`
}

// ClassRequest creates or updates a class group.
type ClassRequest struct {
	Name string `json:"name" validate:"required"`
}

// DirectoryService maintains the reference data the matching logic consumes:
// subjects, teachers and classes. Deleting an entity never cascades into the
// schedule or existing substitutions; dependents resolve as dangling.
type DirectoryService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDirectoryService instantiates DirectoryService.
func NewDirectoryService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *DirectoryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{store: st, validator: validate, logger: logger}
}

// Subjects lists all subjects in directory order.
func (s *DirectoryService) Subjects() []models.Subject {
	return s.store.Snapshot().Subjects
}

// Teachers lists all teachers in directory order.
func (s *DirectoryService) Teachers() []models.Teacher {
	return s.store.Snapshot().Teachers
}

// Classes lists all class groups in directory order.
func (s *DirectoryService) Classes() []models.ClassGroup {
	return s.store.Snapshot().Classes
}

// CreateSubject appends a subject with a fresh id.
func (s *DirectoryService) CreateSubject(req SubjectRequest) (*models.Subject, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	next := s.store.Snapshot().Clone()
	subject := models.Subject{ID: s.store.NewID(), Name: req.Name, Color: req.Color}
	next.Subjects = append(next.Subjects, subject)
	return &subject, s.store.Replace(next), nil
}

// UpdateSubject replaces the named fields of an existing subject.
func (s *DirectoryService) UpdateSubject(id string, req SubjectRequest) (*models.Subject, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	next := s.store.Snapshot().Clone()
	for i := range next.Subjects {
		if next.Subjects[i].ID == id {
			next.Subjects[i].Name = req.Name
			next.Subjects[i].Color = req.Color
			subject := next.Subjects[i]
			return &subject, s.store.Replace(next), nil
		}
	}
	return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
}

// DeleteSubject removes the subject. Lessons referencing it keep their id
// and render a placeholder.
func (s *DirectoryService) DeleteSubject(id string) (store.WriteResult, error) {
	return s.deleteByID(id, "subject not found", func(d *models.AppData) bool {
		kept := d.Subjects[:0]
		found := false
		for _, sub := range d.Subjects {
			if sub.ID == id {
				found = true
				continue
			}
			kept = append(kept, sub)
		}
		d.Subjects = kept
		return found
	})
}

// CreateTeacher appends a teacher with a fresh id and no absence marks.
func (s *DirectoryService) CreateTeacher(req TeacherRequest) (*models.Teacher, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	next := s.store.Snapshot().Clone()
	teacher := models.Teacher{
		ID:               s.store.NewID(),
		Name:             req.Name,
		SubjectIDs:       append([]string{}, req.SubjectIDs...),
		UnavailableDates: []string{},
		ContactInfo:      req.ContactInfo,
	}
	next.Teachers = append(next.Teachers, teacher)
	return &teacher, s.store.Replace(next), nil
}

// UpdateTeacher replaces name, qualifications and contact info, keeping the
// absence marks untouched.
func (s *DirectoryService) UpdateTeacher(id string, req TeacherRequest) (*models.Teacher, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	next := s.store.Snapshot().Clone()
	for i := range next.Teachers {
		if next.Teachers[i].ID == id {
			next.Teachers[i].Name = req.Name
			next.Teachers[i].SubjectIDs = append([]string{}, req.SubjectIDs...)
			next.Teachers[i].ContactInfo = req.ContactInfo
			teacher := next.Teachers[i]
			return &teacher, s.store.Replace(next), nil
		}
	}
	return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
}

// DeleteTeacher removes the teacher. Their lessons and substitutions stay
// behind as dangling references.
func (s *DirectoryService) DeleteTeacher(id string) (store.WriteResult, error) {
	return s.deleteByID(id, "teacher not found", func(d *models.AppData) bool {
		kept := d.Teachers[:0]
		found := false
		for _, t := range d.Teachers {
			if t.ID == id {
				found = true
				continue
			}
			kept = append(kept, t)
		}
		d.Teachers = kept
		return found
	})
}

// CreateClass appends a class group with a fresh id.
func (s *DirectoryService) CreateClass(req ClassRequest) (*models.ClassGroup, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	next := s.store.Snapshot().Clone()
	class := models.ClassGroup{ID: s.store.NewID(), Name: req.Name}
	next.Classes = append(next.Classes, class)
	return &class, s.store.Replace(next), nil
}

// UpdateClass renames an existing class group.
func (s *DirectoryService) UpdateClass(id string, req ClassRequest) (*models.ClassGroup, store.WriteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, store.WriteResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	next := s.store.Snapshot().Clone()
	for i := range next.Classes {
		if next.Classes[i].ID == id {
			next.Classes[i].Name = req.Name
			class := next.Classes[i]
			return &class, s.store.Replace(next), nil
		}
	}
	return nil, store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, "class not found")
}

// DeleteClass removes the class group without touching its timetable rows.
func (s *DirectoryService) DeleteClass(id string) (store.WriteResult, error) {
	return s.deleteByID(id, "class not found", func(d *models.AppData) bool {
		kept := d.Classes[:0]
		found := false
		for _, c := range d.Classes {
			if c.ID == id {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		d.Classes = kept
		return found
	})
}

func (s *DirectoryService) deleteByID(id, notFoundMsg string, remove func(*models.AppData) bool) (store.WriteResult, error) {
	next := s.store.Snapshot().Clone()
	if !remove(next) {
		return store.WriteResult{}, appErrors.Clone(appErrors.ErrNotFound, notFoundMsg)
	}
	return s.store.Replace(next), nil
}
