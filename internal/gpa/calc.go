package gpa

// Tier buckets an average for display.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMid:
		return "mid"
	default:
		return "low"
	}
}

// Credited is anything that carries a credit-hour weight.
type Credited interface {
	CreditHours() int
	QualityPoints() float64
}

// TotalCredits sums the credit hours of items.
func TotalCredits[T Credited](items []T) int {
	total := 0
	for _, it := range items {
		total += it.CreditHours()
	}
	return total
}

func weightedMean[T Credited](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	var points float64
	for _, it := range items {
		points += it.QualityPoints()
	}
	credits := TotalCredits(items)
	if credits <= 0 {
		return 0
	}
	return points / float64(credits)
}

// GPA is the credit-weighted grade point average of subjects.
func GPA(subjects []Subject) float64 {
	return weightedMean(subjects)
}

// CGPA is the credit-weighted mean of semester GPAs.
func CGPA(semesters []Semester) float64 {
	return weightedMean(semesters)
}

// AverageGPA is the plain mean of semester GPAs, ignoring credits.
func AverageGPA(semesters []Semester) float64 {
	if len(semesters) == 0 {
		return 0
	}
	var sum float64
	for _, s := range semesters {
		sum += s.GPA
	}
	return sum / float64(len(semesters))
}

// Classify maps an average onto a display tier.
func Classify(avg float64) Tier {
	switch {
	case avg >= 3.5:
		return TierHigh
	case avg >= 2.0:
		return TierMid
	default:
		return TierLow
	}
}
