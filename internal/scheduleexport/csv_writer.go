package scheduleexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/emi"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for an amortization schedule.
var columns = []string{
	"Month",
	"Payment",
	"Interest",
	"Principal",
	"Remaining Principal",
}

// CSVWriter wraps csv.Writer for exporting amortization schedules.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteSchedule converts schedule rows to CSV rows and writes them.
func (w *CSVWriter) WriteSchedule(rows []emi.ScheduleRow) error {
	for i := range rows {
		if err := w.csv.Write(scheduleRowToRecord(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func scheduleRowToRecord(row *emi.ScheduleRow) []string {
	return []string{
		strconv.Itoa(row.Month),
		formatAmount(row.Payment),
		formatAmount(row.Interest),
		formatAmount(row.PrincipalComponent),
		formatAmount(row.RemainingPrincipal),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
