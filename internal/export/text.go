package export

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
)

// ToText writes a printable table with a title line and summary footer.
func ToText(r Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create text file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "%s\nGenerated on %s\n\n", r.title(), r.GeneratedAt.Format("January 2, 2006"))

	table := tablewriter.NewWriter(f)
	table.SetHeader(r.header())
	table.SetAutoWrapText(false)
	table.AppendBulk(r.rows())

	footer := make([]string, len(r.header()))
	footer[1] = fmt.Sprintf("%s %.2f", r.averageLabel(), r.Average)
	footer[len(footer)-1] = fmt.Sprintf("%d credits", r.TotalCredits)
	table.SetFooter(footer)
	table.Render()

	if _, err := fmt.Fprintf(f, "\n%s: %.2f\nTotal Credits: %d\n", r.averageLabel(), r.Average, r.TotalCredits); err != nil {
		return fmt.Errorf("write text file: %w", err)
	}
	return nil
}
