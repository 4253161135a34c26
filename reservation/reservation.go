package reservation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BenJMcCarty/Hotel-Reservation-Forecasting/timeseries"
)

// Errors returned by parsing and expansion.
var (
	// ErrUnparseableDate indicates a date field that matches none of the
	// accepted formats.
	ErrUnparseableDate = errors.New("reservation: unparseable date")

	// ErrInvalidInterval indicates a departure date before the arrival date.
	ErrInvalidInterval = errors.New("reservation: departure date precedes arrival date")
)

// dateFormats are tried in order when parsing date fields.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// Reservation represents one booking with a stay interval. The stay covers
// the half-open interval [ArrivalDate, DepartureDate): the guest occupies
// every night from arrival up to but not including the departure date.
type Reservation struct {
	ArrivalDate   time.Time
	DepartureDate time.Time

	// Rate is the nightly rate. Zero for bookings without rate data.
	Rate decimal.Decimal

	// Attrs carries any other source fields, preserved verbatim.
	Attrs map[string]string
}

// DailyRecord represents one occupied night carrying the reservation's
// attributes.
type DailyRecord struct {
	Date  time.Time
	Rate  decimal.Decimal
	Attrs map[string]string
}

// ParseDate parses a date string, trying each accepted format in order.
func ParseDate(s string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}

// New parses arrival and departure date strings into a Reservation.
func New(arrival, departure string) (*Reservation, error) {
	arr, err := ParseDate(arrival)
	if err != nil {
		return nil, err
	}
	dep, err := ParseDate(departure)
	if err != nil {
		return nil, err
	}
	return &Reservation{ArrivalDate: arr, DepartureDate: dep}, nil
}

// Nights returns the number of occupied nights, zero for same-day stays.
func (r *Reservation) Nights() int {
	if r.DepartureDate.Before(r.ArrivalDate) {
		return 0
	}
	return int(dateOnly(r.DepartureDate).Sub(dateOnly(r.ArrivalDate)).Hours() / 24)
}

// ExpandToDaily converts reservations into one DailyRecord per occupied
// night, enumerating the half-open interval [ArrivalDate, DepartureDate).
// A same-day stay produces zero records. A reversed interval is rejected
// with ErrInvalidInterval rather than treated as an empty range.
func ExpandToDaily(reservations []Reservation) ([]DailyRecord, error) {
	var records []DailyRecord

	for i, r := range reservations {
		arrival := dateOnly(r.ArrivalDate)
		departure := dateOnly(r.DepartureDate)

		if departure.Before(arrival) {
			return nil, fmt.Errorf("reservation %d (%s to %s): %w",
				i, arrival.Format("2006-01-02"), departure.Format("2006-01-02"),
				ErrInvalidInterval)
		}

		for d := arrival; d.Before(departure); d = d.AddDate(0, 0, 1) {
			records = append(records, DailyRecord{
				Date:  d,
				Rate:  r.Rate,
				Attrs: r.Attrs,
			})
		}
	}

	return records, nil
}

// AggregateOccupancy counts DailyRecords per calendar date and returns the
// occupancy series sorted ascending by date. Only dates present in the input
// appear; use FillDaily for a dense series.
func AggregateOccupancy(records []DailyRecord) *timeseries.Series {
	counts := make(map[time.Time]float64)
	for _, rec := range records {
		counts[dateOnly(rec.Date)]++
	}

	dates := sortedKeys(counts)
	values := make([]float64, len(dates))
	for i, d := range dates {
		values[i] = counts[d]
	}

	series, _ := timeseries.NewWithTimestamps(dates, values)
	series.Name = "occupancy"
	return series
}

// AggregateRevenue sums nightly rates per calendar date and returns the
// daily revenue series sorted ascending by date. Rates are accumulated as
// decimals and converted to float64 only for the series values.
func AggregateRevenue(records []DailyRecord) *timeseries.Series {
	totals := make(map[time.Time]decimal.Decimal)
	for _, rec := range records {
		d := dateOnly(rec.Date)
		totals[d] = totals[d].Add(rec.Rate)
	}

	dates := make([]time.Time, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	values := make([]float64, len(dates))
	for i, d := range dates {
		values[i], _ = totals[d].Float64()
	}

	series, _ := timeseries.NewWithTimestamps(dates, values)
	series.Name = "revenue"
	return series
}

// FillDaily densifies a daily series: every calendar date between the first
// and last timestamp appears exactly once, with zero substituted for missing
// dates. Forecasting needs a regular series; occupancy gaps are genuinely
// zero-occupancy days. Returns the input unchanged if it is empty.
func FillDaily(series *timeseries.Series) *timeseries.Series {
	if series == nil || series.Len() == 0 {
		return series
	}

	existing := make(map[time.Time]float64, series.Len())
	for i, ts := range series.Timestamps {
		existing[dateOnly(ts)] = series.Values[i]
	}

	first := dateOnly(series.Timestamps[0])
	last := dateOnly(series.Timestamps[series.Len()-1])

	var dates []time.Time
	var values []float64
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
		values = append(values, existing[d])
	}

	filled, _ := timeseries.NewWithTimestamps(dates, values)
	filled.Name = series.Name
	return filled
}

// dateOnly truncates a timestamp to midnight UTC so map keys compare by
// calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortedKeys(m map[time.Time]float64) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}
