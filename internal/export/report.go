package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sadopc/gpacalc/internal/gpa"
)

// Kind says which list a report was built from.
type Kind int

const (
	KindSubjects Kind = iota
	KindSemesters
)

// Report is a snapshot of one list and its computed summary.
type Report struct {
	Kind         Kind
	Subjects     []gpa.Subject
	Semesters    []gpa.Semester
	Average      float64
	TotalCredits int
	GeneratedAt  time.Time
}

// SubjectsReport prepares a GPA report.
func SubjectsReport(subjects []gpa.Subject, average float64, totalCredits int) Report {
	return Report{
		Kind:         KindSubjects,
		Subjects:     subjects,
		Average:      average,
		TotalCredits: totalCredits,
		GeneratedAt:  time.Now(),
	}
}

// SemestersReport prepares a CGPA report.
func SemestersReport(semesters []gpa.Semester, average float64, totalCredits int) Report {
	return Report{
		Kind:         KindSemesters,
		Semesters:    semesters,
		Average:      average,
		TotalCredits: totalCredits,
		GeneratedAt:  time.Now(),
	}
}

func (r Report) title() string {
	if r.Kind == KindSemesters {
		return "CGPA Report"
	}
	return "GPA Report"
}

func (r Report) averageLabel() string {
	if r.Kind == KindSemesters {
		return "CGPA"
	}
	return "GPA"
}

// Count is the number of records in the report.
func (r Report) Count() int {
	if r.Kind == KindSemesters {
		return len(r.Semesters)
	}
	return len(r.Subjects)
}

func (r Report) header() []string {
	if r.Kind == KindSemesters {
		return []string{"#", "Semester", "GPA", "Credits", "Quality Points"}
	}
	return []string{"#", "Subject", "Credits", "Grade", "Points", "Quality Points"}
}

func (r Report) rows() [][]string {
	var rows [][]string
	if r.Kind == KindSemesters {
		for i, s := range r.Semesters {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				s.Name,
				fmt.Sprintf("%.2f", s.GPA),
				fmt.Sprintf("%d", s.Credits),
				fmt.Sprintf("%.2f", s.QualityPoints()),
			})
		}
		return rows
	}
	for i, s := range r.Subjects {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Credits),
			s.Grade,
			fmt.Sprintf("%.1f", gpa.PointValue(s.Grade)),
			fmt.Sprintf("%.2f", s.QualityPoints()),
		})
	}
	return rows
}

// FileName is the default file name for the report in the given extension.
func (r Report) FileName(ext string) string {
	prefix := "gpa-report"
	if r.Kind == KindSemesters {
		prefix = "cgpa-report"
	}
	return fmt.Sprintf("%s-%s.%s", prefix, r.GeneratedAt.Format("2006-01-02"), ext)
}

// Format is an output file type.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatText
)

var formatNames = []string{"CSV", "JSON", "Text"}

// Formats lists every supported format in picker order.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatText}
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Unknown"
}

func (f Format) ext() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "txt"
	}
	return "csv"
}

// Write renders r in format f into dir and returns the file path.
func Write(r Report, f Format, dir string) (string, error) {
	path := filepath.Join(dir, r.FileName(f.ext()))
	var err error
	switch f {
	case FormatJSON:
		err = ToJSON(r, path)
	case FormatText:
		err = ToText(r, path)
	default:
		err = ToCSV(r, path)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
