package calllog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

var errEmptyLog = errors.New("call log has no header")

// table is an in-memory CSV: a header and records aligned to it.
type table struct {
	header  []string
	records [][]string
}

// newTable turns a batch of attempts into rows stamped with the same timestamp.
// The error column only exists when at least one attempt failed.
func newTable(attempts []CallAttempt, at time.Time) table {
	withError := false
	for _, a := range attempts {
		if a.Error != "" {
			withError = true
			break
		}
	}

	header := []string{ColumnTo, ColumnSid, ColumnStatus}
	if withError {
		header = append(header, ColumnError)
	}
	header = append(header, ColumnTimestamp)

	ts := FormatTimestamp(at)
	records := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		record := []string{a.To, a.Sid, a.statusValue()}
		if withError {
			record = append(record, a.Error)
		}
		records = append(records, append(record, ts))
	}
	return table{header: header, records: records}
}

// concat appends other's rows after t's. The header is t's columns followed by
// any columns only other has; missing cells are empty.
func (t table) concat(other table) table {
	header := append([]string{}, t.header...)
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range other.header {
		if _, ok := index[col]; !ok {
			index[col] = len(header)
			header = append(header, col)
		}
	}

	records := make([][]string, 0, len(t.records)+len(other.records))
	for _, rec := range t.records {
		row := make([]string, len(header))
		copy(row, rec)
		records = append(records, row)
	}
	for _, rec := range other.records {
		row := make([]string, len(header))
		for i, col := range other.header {
			if i < len(rec) {
				row[index[col]] = rec[i]
			}
		}
		records = append(records, row)
	}
	return table{header: header, records: records}
}

// tail returns up to n trailing rows keyed by column.
func (t table) tail(n int) []Row {
	start := len(t.records) - n
	if start < 0 {
		start = 0
	}
	rows := make([]Row, 0, len(t.records)-start)
	for _, rec := range t.records[start:] {
		row := make(Row, len(t.header))
		for i, col := range t.header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func readTable(path string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table{}, err
	}
	defer f.Close()
	return decodeTable(f)
}

// decodeTable reads a CSV log. Short rows are padded with empty cells; a row
// longer than the header makes the whole log unreadable.
func decodeTable(r io.Reader) (table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("failed to parse call log: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return table{}, errEmptyLog
	}

	header := records[0]
	rows := records[1:]
	for i, rec := range rows {
		if len(rec) > len(header) {
			return table{}, fmt.Errorf("failed to parse call log: row %d has %d fields, header has %d", i+2, len(rec), len(header))
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rows[i] = padded
		}
	}
	return table{header: header, records: rows}, nil
}

func encodeTable(w io.Writer, t table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.records); err != nil {
		return err
	}
	return cw.Error()
}

// writeTable replaces the file at path with t, going through a temporary file
// in the same directory so readers never see a partial log.
func writeTable(path string, t table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create call log directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".call_logs-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temporary call log: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := encodeTable(tmp, t); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write call log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close call log: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace call log: %w", err)
	}
	return nil
}
