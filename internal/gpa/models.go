package gpa

import "github.com/google/uuid"

// Subject is one graded course.
type Subject struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	Grade   string `json:"grade"`
}

// Semester is one term summarised by its own GPA.
type Semester struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	GPA     float64 `json:"gpa"`
	Credits int     `json:"credits"`
}

func (s Subject) CreditHours() int  { return s.Credits }
func (s Semester) CreditHours() int { return s.Credits }

// QualityPoints is credits times the grade's point value.
func (s Subject) QualityPoints() float64 {
	return float64(s.Credits) * PointValue(s.Grade)
}

func (s Semester) QualityPoints() float64 {
	return float64(s.Credits) * s.GPA
}

// NewID returns a time-ordered identifier for a new record.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
