package subscription

import "time"

// Price returns the renewal price for a plan length. ok is false for any
// length outside the tariff.
func Price(months int) (amount int64, ok bool) {
	switch months {
	case 1:
		return 399, true
	case 2:
		return 499, true
	case 3:
		return 699, true
	case 6:
		return 1199, true
	case 8:
		return 1599, true
	case 12:
		return 2199, true
	}
	return 0, false
}

// TariffMonths lists the plan lengths that have a price, shortest first.
func TariffMonths() []int {
	return []int{1, 2, 3, 6, 8, 12}
}

// Extend applies a renewal of months to the current period. An active period
// (end strictly after now) keeps its start and grows from its end. Otherwise
// the period restarts at now.
func Extend(start, end *time.Time, months int, now time.Time) (newStart *time.Time, newEnd time.Time) {
	span := time.Duration(months*DaysPerMonth) * 24 * time.Hour
	if end != nil && end.After(now) {
		return start, end.Add(span)
	}
	restart := now
	return &restart, now.Add(span)
}
