package models

// Teacher represents an instructor record. SubjectIDs lists the subjects the
// teacher is qualified to teach; UnavailableDates holds plain YYYY-MM-DD
// calendar dates on which the teacher is marked absent.
type Teacher struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	SubjectIDs       []string `json:"subject_ids"`
	UnavailableDates []string `json:"unavailable_dates"`
	ContactInfo      *string  `json:"contact_info,omitempty"`
}

// UnavailableOn reports whether the teacher is marked absent on the date.
func (t Teacher) UnavailableOn(date string) bool {
	for _, d := range t.UnavailableDates {
		if d == date {
			return true
		}
	}
	return false
}

// Teaches reports whether the teacher is qualified for the subject.
func (t Teacher) Teaches(subjectID string) bool {
	for _, id := range t.SubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}
