package gpa

// gradeScale is ordered from best to worst so pickers list grades in that order.
var gradeScale = []struct {
	grade  string
	points float64
}{
	{"A+", 4.0},
	{"A", 4.0},
	{"A-", 3.7},
	{"B+", 3.3},
	{"B", 3.0},
	{"B-", 2.7},
	{"C+", 2.3},
	{"C", 2.0},
	{"C-", 1.7},
	{"D+", 1.3},
	{"D", 1.0},
	{"F", 0.0},
}

var gradePoints = func() map[string]float64 {
	m := make(map[string]float64, len(gradeScale))
	for _, g := range gradeScale {
		m[g.grade] = g.points
	}
	return m
}()

// PointValue returns the 4.0-scale value of a letter grade.
// Unknown grades are worth 0.
func PointValue(grade string) float64 {
	return gradePoints[grade]
}

// IsGrade reports whether grade is a key of the scale.
func IsGrade(grade string) bool {
	_, ok := gradePoints[grade]
	return ok
}

// Grades returns the scale keys from best to worst.
func Grades() []string {
	out := make([]string, len(gradeScale))
	for i, g := range gradeScale {
		out[i] = g.grade
	}
	return out
}
