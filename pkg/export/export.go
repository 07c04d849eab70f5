// Package export turns already-materialized report tables into downloadable
// artifacts: CSV text, paginated PDF documents, and XLSX workbooks. Every
// builder is a stateless single pass over its input; the collections are
// small and fully resident in memory, so there is no streaming.
package export

import (
	"fmt"
	"time"
)

// Table is a materialized report table: ordered column headers and one row
// of stringified values per record.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Filename returns the artifact name for a report kind and extension,
// e.g. karibu_inventory_report_2024-01-31.csv.
func Filename(report, ext string, now time.Time) string {
	return fmt.Sprintf("karibu_%s_report_%s.%s", report, now.Format("2006-01-02"), ext)
}
