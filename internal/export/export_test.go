package export

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/gpacalc/internal/gpa"
)

func sampleSubjects() []gpa.Subject {
	return []gpa.Subject{
		{ID: "s1", Name: "Calculus", Credits: 3, Grade: "A"},
		{ID: "s2", Name: "Physics", Credits: 4, Grade: "B+"},
	}
}

func sampleSemesters() []gpa.Semester {
	return []gpa.Semester{
		{ID: "m1", Name: "Fall 2025", GPA: 3.8, Credits: 15},
		{ID: "m2", Name: "Spring 2026", GPA: 3.2, Credits: 12},
	}
}

func subjectsReport() Report {
	subjects := sampleSubjects()
	return SubjectsReport(subjects, gpa.GPA(subjects), gpa.TotalCredits(subjects))
}

func semestersReport() Report {
	semesters := sampleSemesters()
	return SemestersReport(semesters, gpa.CGPA(semesters), gpa.TotalCredits(semesters))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

// ============================================================
// Report
// ============================================================

func TestReportConstructors(t *testing.T) {
	r := subjectsReport()
	if r.Kind != KindSubjects || r.Count() != 2 || r.TotalCredits != 7 {
		t.Fatalf("unexpected subjects report: %+v", r)
	}
	if r.GeneratedAt.IsZero() {
		t.Fatal("GeneratedAt should be set")
	}

	m := semestersReport()
	if m.Kind != KindSemesters || m.Count() != 2 || m.TotalCredits != 27 {
		t.Fatalf("unexpected semesters report: %+v", m)
	}
}

func TestFileName(t *testing.T) {
	r := subjectsReport()
	r.GeneratedAt = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	if got := r.FileName("csv"); got != "gpa-report-2026-10-15.csv" {
		t.Fatalf("FileName = %q", got)
	}
	m := semestersReport()
	m.GeneratedAt = r.GeneratedAt
	if got := m.FileName("txt"); got != "cgpa-report-2026-10-15.txt" {
		t.Fatalf("FileName = %q", got)
	}
}

func TestFormats(t *testing.T) {
	names := []string{}
	for _, f := range Formats() {
		names = append(names, f.String())
	}
	if strings.Join(names, ",") != "CSV,JSON,Text" {
		t.Fatalf("formats = %v", names)
	}
	if Format(42).String() != "Unknown" {
		t.Fatal("out of range format should be Unknown")
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSVSubjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpa.csv")
	if err := ToCSV(subjectsReport(), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	records := readCSV(t, path)
	// header + 2 rows + 2 summary rows (blank line is skipped by the reader)
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d: %v", len(records), records)
	}

	wantHeader := []string{"#", "Subject", "Credits", "Grade", "Points", "Quality Points"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	row := records[2]
	if row[1] != "Physics" || row[2] != "4" || row[3] != "B+" || row[4] != "3.3" || row[5] != "13.20" {
		t.Fatalf("unexpected row: %v", row)
	}

	if records[3][0] != "GPA" || records[3][1] != "3.60" {
		t.Fatalf("summary = %v, want GPA 3.60", records[3])
	}
	if records[4][0] != "Total Credits" || records[4][1] != "7" {
		t.Fatalf("summary = %v", records[4])
	}
}

func TestToCSVSemesters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa.csv")
	if err := ToCSV(semestersReport(), path); err != nil {
		t.Fatal(err)
	}
	records := readCSV(t, path)
	if records[0][1] != "Semester" {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][1] != "Fall 2025" || records[1][2] != "3.80" || records[1][4] != "57.00" {
		t.Fatalf("row = %v", records[1])
	}
	if records[3][0] != "CGPA" || records[3][1] != "3.53" {
		t.Fatalf("summary = %v, want CGPA 3.53", records[3])
	}
}

func TestToCSVSpecialCharacters(t *testing.T) {
	subjects := []gpa.Subject{{ID: "x", Name: `Lab "Advanced", II`, Credits: 1, Grade: "A"}}
	path := filepath.Join(t.TempDir(), "special.csv")
	if err := ToCSV(SubjectsReport(subjects, 4, 1), path); err != nil {
		t.Fatal(err)
	}
	records := readCSV(t, path)
	if records[1][1] != `Lab "Advanced", II` {
		t.Fatalf("name = %q", records[1][1])
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(subjectsReport(), "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSONSubjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpa.json")
	if err := ToJSON(subjectsReport(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got jsonExport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != "GPA Report" || got.Count != 2 || got.TotalCredits != 7 {
		t.Fatalf("unexpected export: %+v", got)
	}
	if got.Tier != "high" {
		t.Fatalf("tier = %q, want high", got.Tier)
	}
	if len(got.Subjects) != 2 || got.Subjects[0].Name != "Calculus" || got.Subjects[0].Points != 4.0 {
		t.Fatalf("subjects = %+v", got.Subjects)
	}
	if got.Semesters != nil {
		t.Fatal("semesters should be omitted")
	}
	if _, err := time.Parse(time.RFC3339, got.ExportedAt); err != nil {
		t.Fatalf("exported_at not RFC3339: %q", got.ExportedAt)
	}
}

func TestToJSONSemesters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgpa.json")
	if err := ToJSON(semestersReport(), path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), `"subjects"`) {
		t.Fatal("subjects key should be omitted for a semesters report")
	}
	var got jsonExport
	json.Unmarshal(data, &got)
	if got.Title != "CGPA Report" || len(got.Semesters) != 2 || math.Abs(got.Semesters[1].QualityPoints-38.4) > 1e-9 {
		t.Fatalf("unexpected export: %+v", got)
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(subjectsReport(), "/nonexistent/dir/file.json"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// Text
// ============================================================

func TestToText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpa.txt")
	if err := ToText(subjectsReport(), path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	out := string(data)
	for _, want := range []string{"GPA Report", "Generated on", "Calculus", "Physics", "GPA: 3.60", "Total Credits: 7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestToTextBadPath(t *testing.T) {
	if err := ToText(semestersReport(), "/nonexistent/dir/file.txt"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// Write
// ============================================================

func TestWriteEachFormat(t *testing.T) {
	dir := t.TempDir()
	for _, f := range Formats() {
		path, err := Write(semestersReport(), f, dir)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if filepath.Dir(path) != dir {
			t.Fatalf("%s written to %q", f, path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
	}
}
