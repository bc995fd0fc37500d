package prediction

import (
	"math"
	"time"

	"commutesync/internal/models"
	"commutesync/internal/timeutil"
)

// LegData is the resolved input for one leg: the route plus its historical
// sample and day-matching schedule entries.
type LegData struct {
	Route   models.Route
	Logs    []models.TripLog
	Entries []models.ScheduleEntry
}

// Chain walks legs in itinerary order, threading three independent clocks
// through the estimator. Each clock accumulates only its own scenario's
// wait+travel; legs are processed strictly left to right because leg i's
// schedule-window matching depends on the cumulative arrival from legs
// 0..i-1. The safe clock is the one fed into window matching: it is the
// scenario the itinerary is planned around.
func (e Estimator) Chain(start time.Time, legs []LegData) models.PredictResponse {
	best, safe, worst := start, start, start

	breakdown := make([]models.LegBreakdown, 0, len(legs))
	for _, leg := range legs {
		est := e.Estimate(leg.Route.Mode, leg.Logs, leg.Entries, safe)

		best = timeutil.AddMinutes(best, est.Best.Wait+est.Best.Travel)
		safe = timeutil.AddMinutes(safe, est.Safe.Wait+est.Safe.Travel)
		worst = timeutil.AddMinutes(worst, est.Worst.Wait+est.Worst.Travel)

		entry := models.LegBreakdown{
			Name:        leg.Route.Name,
			Mode:        leg.Route.Mode,
			Origin:      leg.Route.Origin,
			Destination: leg.Route.Destination,
			Source:      est.Source,
			ArrivalTime: models.ClockStrings{
				Best:  timeutil.FormatClock(best),
				Safe:  timeutil.FormatClock(safe),
				Worst: timeutil.FormatClock(worst),
			},
		}
		entry.Timelines.Safe = roundTimes(est.Safe)
		entry.Timelines.Worst = roundTimes(est.Worst)
		breakdown = append(breakdown, entry)
	}

	return models.PredictResponse{
		Arrivals: models.ClockStrings{
			Best:  timeutil.FormatClock(best),
			Safe:  timeutil.FormatClock(safe),
			Worst: timeutil.FormatClock(worst),
		},
		Breakdown: breakdown,
	}
}

func roundTimes(t ScenarioTimes) models.LegTimes {
	return models.LegTimes{
		Wait:   int(math.Round(t.Wait)),
		Travel: int(math.Round(t.Travel)),
	}
}
