package reporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"glassdoor-scraper/internal/scraper"
)

// Header is the fixed column order of the output file.
var Header = []string{"Name", "Company", "State", "City", "Salary", "Location", "Url"}

// OutputPath returns {dir}/{keyword}-{place}-job-results.csv.
func OutputPath(dir, keyword, place string) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s-job-results.csv", keyword, place))
}

// WriteCSV writes the header and one row per listing, every field quoted.
// The header is written even when listings is empty.
func WriteCSV(w io.Writer, listings []scraper.Listing) error {
	bw := bufio.NewWriter(w)
	if err := writeRow(bw, Header); err != nil {
		return err
	}
	for _, l := range listings {
		row := []string{l.Name, l.Company, l.State, l.City, l.Salary, l.Location, l.URL}
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveCSV creates path (and its directory) and writes listings to it.
func SaveCSV(path string, listings []scraper.Listing) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output csv: %w", err)
	}
	if err := WriteCSV(f, listings); err != nil {
		f.Close()
		return fmt.Errorf("write output csv: %w", err)
	}
	return f.Close()
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}
