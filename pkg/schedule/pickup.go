package schedule

import "time"

// DefaultHorizonDays bounds eager materialization of future schedulings.
const DefaultHorizonDays = 30

// NextPickupDate resolves the first qualifying pickup for a subscription.
//
// The reference point is whichever of startDate/now is later, so future-dated
// subscriptions never get a pickup in the past. The pickup always falls on the
// NEXT occurrence of pickupDay: when the reference already sits on the target
// weekday it skips to the following week, guaranteeing at least a week of lead
// time before the first collection.
//
// For recurrences longer than a week the date is snapped forward so the whole
// weeks elapsed since startDate are a multiple of the recurrence cycle
// (ceil(recurrenceDays/7) weeks). All pets on the same tier and weekday land
// on the same calendar day, which the scheduling grouping relies on.
func NextPickupDate(startDate time.Time, recurrenceDays int, pickupDay time.Weekday, now time.Time) time.Time {
	ref := startDate
	if now.After(ref) {
		ref = now
	}

	daysAhead := (int(pickupDay) - int(ref.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	candidate := ref.AddDate(0, 0, daysAhead)

	if recurrenceDays > 7 {
		cycleWeeks := (recurrenceDays + 6) / 7
		elapsedWeeks := int(candidate.Sub(startDate).Hours()/24) / 7
		if rem := elapsedWeeks % cycleWeeks; rem != 0 {
			candidate = candidate.AddDate(0, 0, (cycleWeeks-rem)*7)
		}
	}

	return candidate
}

// Occurrences expands a first pickup into the forward sequence of pickup
// dates, spaced by the recurrence interval, up to and including horizon.
// Returns nil when the first pickup already lies beyond the horizon.
func Occurrences(first time.Time, recurrenceDays int, horizon time.Time) []time.Time {
	if recurrenceDays < 1 {
		return nil
	}

	var dates []time.Time
	for d := first; !d.After(horizon); d = d.AddDate(0, 0, recurrenceDays) {
		dates = append(dates, d)
	}
	return dates
}

// DefaultHorizon returns the materialization cutoff relative to now.
func DefaultHorizon(now time.Time) time.Time {
	return now.AddDate(0, 0, DefaultHorizonDays)
}
