// Package reservation converts booking records into daily occupancy series.
//
// A Reservation covers the half-open stay interval [ArrivalDate,
// DepartureDate): arrival night included, departure day excluded, so a
// two-night booking expands to exactly two DailyRecords and a same-day
// booking expands to none.
//
// # Pipeline
//
// Load bookings, expand to nights, aggregate and densify:
//
//	bookings, err := reservation.LoadCSV("bookings.csv", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	daily, err := reservation.ExpandToDaily(bookings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	occupancy := reservation.FillDaily(reservation.AggregateOccupancy(daily))
//
// AggregateOccupancy emits one entry per date that actually appears in the
// records. FillDaily then inserts explicit zero-occupancy days so the series
// is regular, which downstream model fitting requires.
//
// Reversed intervals (departure before arrival) fail ExpandToDaily with
// ErrInvalidInterval; they are never silently treated as empty stays.
//
// When rate data is present, AggregateRevenue produces the matching daily
// revenue series using decimal arithmetic for the per-day sums.
package reservation
