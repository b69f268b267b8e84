package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"jobfinder-engine/internal/domain"
)

// Columns is the fixed column order consumers of exported files rely on.
var Columns = []string{"title", "company", "location", "remote", "date_posted", "source", "url"}

// WriteCSV renders postings as CSV with a header row.
func WriteCSV(w io.Writer, postings []domain.JobPosting) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range postings {
		rec := []string{
			p.Title,
			p.Company,
			p.Location,
			strconv.FormatBool(p.Remote),
			p.DatePosted,
			p.Source,
			p.URL,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
