package reservation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVOptions holds options for loading reservations from CSV.
type CSVOptions struct {
	ArrivalColumn   string // Column name for arrival dates (default: discover)
	DepartureColumn string // Column name for departure dates (default: discover)
	RateColumn      string // Column name for the nightly rate (optional)
	Delimiter       rune   // Field delimiter (default: ',')
	SkipRows        int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading. Column names
// are discovered from the header: common arrival/departure spellings are
// recognized automatically.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
	}
}

var (
	arrivalHeaders   = []string{"arrival_date", "arrival", "check_in", "checkin"}
	departureHeaders = []string{"departure_date", "departure", "check_out", "checkout"}
	rateHeaders      = []string{"rate", "adr", "nightly_rate", "price"}
)

// LoadCSV loads reservations from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) ([]Reservation, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads reservations from an io.Reader. The first
// non-skipped row must be a header naming the arrival and departure columns.
// Date fields that match none of the accepted formats fail the load with
// ErrUnparseableDate.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) ([]Reservation, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	arrivalIdx, departureIdx, rateIdx := -1, -1, -1
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.Trim(h, "\"")))
		switch {
		case opts.ArrivalColumn != "" && h == strings.ToLower(opts.ArrivalColumn):
			arrivalIdx = i
		case opts.DepartureColumn != "" && h == strings.ToLower(opts.DepartureColumn):
			departureIdx = i
		case opts.RateColumn != "" && h == strings.ToLower(opts.RateColumn):
			rateIdx = i
		case opts.ArrivalColumn == "" && arrivalIdx == -1 && contains(arrivalHeaders, h):
			arrivalIdx = i
		case opts.DepartureColumn == "" && departureIdx == -1 && contains(departureHeaders, h):
			departureIdx = i
		case opts.RateColumn == "" && rateIdx == -1 && contains(rateHeaders, h):
			rateIdx = i
		}
	}

	if arrivalIdx == -1 || departureIdx == -1 {
		return nil, errors.New("reservation: arrival and departure columns not found in CSV header")
	}

	var reservations []Reservation
	row := opts.SkipRows + 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		if arrivalIdx >= len(record) || departureIdx >= len(record) {
			return nil, fmt.Errorf("reservation: row %d has %d fields, need at least %d",
				row, len(record), max(arrivalIdx, departureIdx)+1)
		}

		arrival, err := ParseDate(cleanField(record[arrivalIdx]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		departure, err := ParseDate(cleanField(record[departureIdx]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		res := Reservation{ArrivalDate: arrival, DepartureDate: departure}

		if rateIdx >= 0 && rateIdx < len(record) {
			if rateStr := cleanField(record[rateIdx]); rateStr != "" {
				rate, err := decimal.NewFromString(rateStr)
				if err != nil {
					return nil, fmt.Errorf("reservation: row %d: invalid rate %q: %w", row, rateStr, err)
				}
				res.Rate = rate
			}
		}

		attrs := make(map[string]string)
		for i, field := range record {
			if i == arrivalIdx || i == departureIdx || i == rateIdx || i >= len(header) {
				continue
			}
			attrs[cleanField(header[i])] = cleanField(field)
		}
		if len(attrs) > 0 {
			res.Attrs = attrs
		}

		reservations = append(reservations, res)
	}

	return reservations, nil
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
