package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/gpacalc/internal/gpa"
)

type jsonExport struct {
	Title        string         `json:"title"`
	ExportedAt   string         `json:"exported_at"`
	Average      float64        `json:"average"`
	Tier         string         `json:"tier"`
	TotalCredits int            `json:"total_credits"`
	Count        int            `json:"count"`
	Subjects     []jsonSubject  `json:"subjects,omitempty"`
	Semesters    []jsonSemester `json:"semesters,omitempty"`
}

type jsonSubject struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Credits       int     `json:"credits"`
	Grade         string  `json:"grade"`
	Points        float64 `json:"points"`
	QualityPoints float64 `json:"quality_points"`
}

type jsonSemester struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	GPA           float64 `json:"gpa"`
	Credits       int     `json:"credits"`
	QualityPoints float64 `json:"quality_points"`
}

func ToJSON(r Report, path string) error {
	export := jsonExport{
		Title:        r.title(),
		ExportedAt:   r.GeneratedAt.UTC().Format(time.RFC3339),
		Average:      r.Average,
		Tier:         gpa.Classify(r.Average).String(),
		TotalCredits: r.TotalCredits,
		Count:        r.Count(),
	}

	for _, s := range r.Subjects {
		export.Subjects = append(export.Subjects, jsonSubject{
			ID:            s.ID,
			Name:          s.Name,
			Credits:       s.Credits,
			Grade:         s.Grade,
			Points:        gpa.PointValue(s.Grade),
			QualityPoints: s.QualityPoints(),
		})
	}
	for _, s := range r.Semesters {
		export.Semesters = append(export.Semesters, jsonSemester{
			ID:            s.ID,
			Name:          s.Name,
			GPA:           s.GPA,
			Credits:       s.Credits,
			QualityPoints: s.QualityPoints(),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
