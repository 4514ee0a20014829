package export

import (
	"fmt"
	"io"
	"strings"

	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
)

// escapeCSV quotes a field when it contains a comma, quote, or newline,
// doubling embedded quotes. Kept hand-rolled so the output is byte-for-byte
// what downstream spreadsheets already ingest.
func escapeCSV(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// WriteCSV writes the header and rows as CSV.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, joinCSV(header))
	for _, row := range rows {
		lines = append(lines, joinCSV(row))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	observer.IncExportRows("csv", len(rows))
	return nil
}

func joinCSV(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeCSV(f)
	}
	return strings.Join(escaped, ",")
}
