package store

import "github.com/gymplan/subplan-api/internal/models"

// Seed returns the default document used when no stored one exists.
func Seed() *models.AppData {
	return &models.AppData{
		Subjects: []models.Subject{
			{ID: "s1", Name: "Математика", Color: "#bfdbfe"},
			{ID: "s2", Name: "Русский язык", Color: "#bbf7d0"},
			{ID: "s3", Name: "Литература", Color: "#fef08a"},
			{ID: "s4", Name: "Физика", Color: "#ddd6fe"},
			{ID: "s5", Name: "История", Color: "#fed7aa"},
		},
		Teachers: []models.Teacher{
			{ID: "t1", Name: "Иванова А.А.", SubjectIDs: []string{"s1", "s4"}, UnavailableDates: []string{}},
			{ID: "t2", Name: "Петров Б.Б.", SubjectIDs: []string{"s2", "s3"}, UnavailableDates: []string{}},
			{ID: "t3", Name: "Сидорова В.В.", SubjectIDs: []string{"s5"}, UnavailableDates: []string{}},
		},
		Classes: []models.ClassGroup{
			{ID: "c1", Name: "5А"},
			{ID: "c2", Name: "5Б"},
			{ID: "c3", Name: "10А"},
		},
		Schedule:      []models.ScheduleItem{},
		Substitutions: []models.Substitution{},
	}
}
