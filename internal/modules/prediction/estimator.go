package prediction

import (
	"time"

	"commutesync/internal/models"
	"commutesync/internal/stats"
	"commutesync/internal/timeutil"
)

// ScenarioTimes holds one scenario's wait and travel estimate in fractional
// minutes. Rounding happens only when the response is built, so chained legs
// never accumulate rounding drift.
type ScenarioTimes struct {
	Wait   float64
	Travel float64
}

// LegEstimate is the estimator's full output for one leg.
type LegEstimate struct {
	Best   ScenarioTimes
	Safe   ScenarioTimes
	Worst  ScenarioTimes
	Source models.EstimateSource
}

// Defaults seed estimates for routes with no usable history. They are
// configuration, not derived statistics.
type Defaults struct {
	BestTravel  float64
	SafeTravel  float64
	WorstTravel float64
	SafeWait    float64
	WorstWait   float64
}

// StandardDefaults are the stock seed values.
var StandardDefaults = Defaults{
	BestTravel:  10,
	SafeTravel:  15,
	WorstTravel: 20,
	SafeWait:    5,
	WorstWait:   15,
}

// Estimator turns one route's historical logs and schedule entries into
// best/safe/worst wait and travel estimates.
type Estimator struct {
	Defaults Defaults
}

// Estimate computes a leg's timing. legStart is the clock value at which the
// traveller reaches this leg's stop; it drives schedule window selection and
// the first-departure adjustment. entries must already be filtered to the
// request's day type.
func (e Estimator) Estimate(mode models.Mode, logs []models.TripLog, entries []models.ScheduleEntry, legStart time.Time) LegEstimate {
	if mode.DurationOnly() {
		return e.estimateDurationOnly(logs)
	}
	return e.estimateVehicle(logs, entries, legStart)
}

// estimateDurationOnly covers walking and bicycle legs: no waiting phase,
// travel measured pickup-arrival to dropoff-arrival.
func (e Estimator) estimateDurationOnly(logs []models.TripLog) LegEstimate {
	travels := stats.Positive(sampleMinutes(logs, func(l models.TripLog) (string, string) {
		return l.TimestampArrivedPickup, l.TimestampArrivedDrop
	}))

	est := LegEstimate{Source: models.SourceDefault}
	if len(travels) == 0 {
		est.Best.Travel = e.Defaults.BestTravel
		est.Safe.Travel = e.Defaults.SafeTravel
		est.Worst.Travel = e.Defaults.WorstTravel
		return est
	}

	est.Source = models.SourceHistorical
	est.Best.Travel, _ = stats.Min(travels)
	est.Safe.Travel, _ = stats.Mean(travels)
	est.Worst.Travel, _ = stats.Max(travels)
	return est
}

// estimateVehicle covers every other mode, including custom labels:
// wait = boarded - arrived, travel = dropoff - departed, per log, with
// non-positive samples dropped as corrupt rather than clamped.
func (e Estimator) estimateVehicle(logs []models.TripLog, entries []models.ScheduleEntry, legStart time.Time) LegEstimate {
	waits := stats.Positive(sampleMinutes(logs, func(l models.TripLog) (string, string) {
		return l.TimestampArrivedPickup, l.TimestampBoarded
	}))
	travels := stats.Positive(sampleMinutes(logs, func(l models.TripLog) (string, string) {
		return l.TimestampDeparted, l.TimestampArrivedDrop
	}))

	interval := float64(matchInterval(entries, legStart))

	var est LegEstimate
	switch {
	case len(waits) > 0 || len(travels) > 0:
		est.Source = models.SourceHistorical
	case interval > 0:
		est.Source = models.SourceSchedule
	default:
		est.Source = models.SourceDefault
	}

	// Best case: the vehicle is right there.
	est.Best.Wait = 0
	if min, ok := stats.Min(travels); ok {
		est.Best.Travel = min
	} else {
		est.Best.Travel = e.Defaults.BestTravel
	}

	if mean, ok := stats.Mean(waits); ok {
		est.Safe.Wait = mean
	} else if interval > 0 {
		est.Safe.Wait = interval / 2
	} else {
		est.Safe.Wait = e.Defaults.SafeWait
	}
	if mean, ok := stats.Mean(travels); ok {
		est.Safe.Travel = mean
	} else {
		est.Safe.Travel = e.Defaults.SafeTravel
	}

	// Worst case: you just missed one, so a known headway is added on top of
	// the worst observed wait.
	if max, ok := stats.Max(waits); ok {
		est.Worst.Wait = max + interval
	} else if interval > 0 {
		est.Worst.Wait = interval
	} else {
		est.Worst.Wait = e.Defaults.WorstWait
	}
	if max, ok := stats.Max(travels); ok {
		est.Worst.Travel = max
	} else {
		est.Worst.Travel = e.Defaults.WorstTravel
	}

	// Before the day's first departure the wait is the gap until service
	// starts, and the worst case misses that first vehicle too.
	if first, ok := firstDeparture(entries); ok {
		startClock := clockOnly(legStart)
		if startClock.Before(first) {
			gap := timeutil.MinutesBetween(startClock, first)
			est.Best.Wait = gap
			est.Safe.Wait = gap
			est.Worst.Wait = gap + interval
		}
	}

	return est
}

// matchInterval selects the schedule entry whose window contains legStart's
// time of day, falling back to the day type's first entry, or 0 with no
// entries at all.
func matchInterval(entries []models.ScheduleEntry, legStart time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	startClock := clockOnly(legStart)
	for _, entry := range entries {
		if windowContains(entry, startClock) {
			return entry.IntervalMinutes
		}
	}
	return entries[0].IntervalMinutes
}

// windowContains checks start <= t <= end with open bounds defaulting to the
// whole day.
func windowContains(entry models.ScheduleEntry, t time.Time) bool {
	start := timeutil.ReferenceDate
	if entry.StartTime != "" {
		if parsed, err := timeutil.ParseClock(entry.StartTime); err == nil {
			start = parsed
		}
	}
	end := timeutil.ReferenceDate.Add(24*time.Hour - time.Minute)
	if entry.EndTime != "" {
		if parsed, err := timeutil.ParseClock(entry.EndTime); err == nil {
			end = parsed
		}
	}
	return !t.Before(start) && !t.After(end)
}

// firstDeparture returns the earliest declared window start among entries.
// Entries without a start time mean service runs from midnight, so there is
// no pre-service gap to model.
func firstDeparture(entries []models.ScheduleEntry) (time.Time, bool) {
	var first time.Time
	found := false
	for _, entry := range entries {
		if entry.StartTime == "" {
			return time.Time{}, false
		}
		parsed, err := timeutil.ParseClock(entry.StartTime)
		if err != nil {
			continue
		}
		if !found || parsed.Before(first) {
			first = parsed
			found = true
		}
	}
	return first, found
}

// clockOnly projects t's time of day back onto the reference date, so legs
// chained past midnight still match schedule windows by wall clock.
func clockOnly(t time.Time) time.Time {
	return time.Date(timeutil.ReferenceDate.Year(), timeutil.ReferenceDate.Month(), timeutil.ReferenceDate.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// sampleMinutes extracts one delta per log via pick, skipping unparseable
// timestamps. Sign filtering is the caller's choice.
func sampleMinutes(logs []models.TripLog, pick func(models.TripLog) (string, string)) []float64 {
	out := make([]float64, 0, len(logs))
	for _, l := range logs {
		fromStr, toStr := pick(l)
		from, err := timeutil.ParseClock(fromStr)
		if err != nil {
			continue
		}
		to, err := timeutil.ParseClock(toStr)
		if err != nil {
			continue
		}
		out = append(out, timeutil.MinutesBetween(from, to))
	}
	return out
}
