package export

import "strings"

// CSV serializes the table as UTF-8 text: a comma-joined header line followed
// by one line per row. It returns nil for an empty table; callers must check
// before offering a download.
//
// Quoting is intentionally minimal: only field values containing a comma are
// wrapped in double quotes, and embedded double quotes are NOT escaped.
// Downstream consumers of these reports were built against exactly this
// output, so the incomplete escaping is preserved rather than fixed.
// encoding/csv is not used because it would both quote and escape
// differently.
func CSV(t Table) []byte {
	if len(t.Rows) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(strings.Join(t.Headers, ","))
	for _, row := range t.Rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteField(field))
		}
	}
	return []byte(b.String())
}

func quoteField(v string) string {
	if strings.Contains(v, ",") {
		return `"` + v + `"`
	}
	return v
}
