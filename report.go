package pagesim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV serializes the table to w as comma-separated rows with the
// header `wss,<policy names...>`, one row per working-set size, values as
// plain integers.
func (r *Results) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(append([]string{"wss"}, r.names...)); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	row := make([]string, len(r.names)+1)
	for capacity := r.low; capacity <= r.high; capacity++ {
		row[0] = strconv.Itoa(capacity)
		for i, faults := range r.faults[capacity-r.low] {
			row[i+1] = strconv.Itoa(faults)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write report row for wss %d: %w", capacity, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
