package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ToCSV writes the report rows followed by a blank line and summary rows.
func ToCSV(r Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(r.header()); err != nil {
		return err
	}
	for _, row := range r.rows() {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	// Summary
	summary := [][]string{
		{},
		{r.averageLabel(), fmt.Sprintf("%.2f", r.Average)},
		{"Total Credits", fmt.Sprintf("%d", r.TotalCredits)},
	}
	for _, row := range summary {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
