package prediction

import (
	"testing"

	"commutesync/internal/models"
	"commutesync/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busRoute(name string) models.Route {
	return models.Route{Name: name, Mode: models.ModeBus, Origin: "A", Destination: "B"}
}

func TestChainSingleVehicleLeg(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	legs := []LegData{{
		Route: busRoute("Morning Bus"),
		Logs: []models.TripLog{
			vehicleLog("08:00:00", "08:04:00", "08:05:00", "08:17:00"),
			vehicleLog("08:00:00", "08:06:00", "08:07:00", "08:21:00"),
			vehicleLog("08:00:00", "08:08:00", "08:09:00", "08:25:00"),
		},
	}}

	resp := e.Chain(mustClock(t, "08:00"), legs)

	assert.Equal(t, "08:12", resp.Arrivals.Best)  // 0 wait + 12 travel
	assert.Equal(t, "08:20", resp.Arrivals.Safe)  // 6 wait + 14 travel
	assert.Equal(t, "08:24", resp.Arrivals.Worst) // 8 wait + 16 travel

	require.Len(t, resp.Breakdown, 1)
	leg := resp.Breakdown[0]
	assert.Equal(t, "Morning Bus", leg.Name)
	assert.Equal(t, models.ModeBus, leg.Mode)
	assert.Equal(t, models.SourceHistorical, leg.Source)
	assert.Equal(t, models.LegTimes{Wait: 6, Travel: 14}, leg.Timelines.Safe)
	assert.Equal(t, models.LegTimes{Wait: 8, Travel: 16}, leg.Timelines.Worst)
	assert.Equal(t, resp.Arrivals, leg.ArrivalTime)
}

func TestChainScenariosStayOrdered(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	legs := []LegData{
		{Route: busRoute("Leg 1"), Logs: []models.TripLog{
			vehicleLog("07:00:00", "07:05:00", "07:06:00", "07:30:00"),
		}},
		{Route: models.Route{Name: "Leg 2", Mode: models.ModeWalking}},
		{Route: busRoute("Leg 3"), Entries: []models.ScheduleEntry{
			{IntervalMinutes: 15},
		}},
	}

	resp := e.Chain(mustClock(t, "07:00"), legs)

	best, err := timeutil.ParseClock(resp.Arrivals.Best)
	require.NoError(t, err)
	safe, err := timeutil.ParseClock(resp.Arrivals.Safe)
	require.NoError(t, err)
	worst, err := timeutil.ParseClock(resp.Arrivals.Worst)
	require.NoError(t, err)

	assert.False(t, safe.Before(best), "safe arrival must not beat best")
	assert.False(t, worst.Before(safe), "worst arrival must not beat safe")
}

func TestChainThreadsSafeClockIntoWindowMatching(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	// Leg 1 is a 30-minute walk, so the safe clock reaches leg 2's stop at
	// 08:30. Leg 2's 08:15+ window must be the one selected, not the one
	// covering the original 08:00 start.
	legs := []LegData{
		{Route: models.Route{Name: "Walk", Mode: models.ModeWalking}, Logs: []models.TripLog{
			walkLog("08:00:00", "08:30:00"),
		}},
		{Route: busRoute("Bus"), Entries: []models.ScheduleEntry{
			{IntervalMinutes: 40, StartTime: "00:00:00", EndTime: "08:14:00"},
			{IntervalMinutes: 10, StartTime: "08:15:00", EndTime: "23:00:00"},
		}},
	}

	resp := e.Chain(mustClock(t, "08:00"), legs)

	require.Len(t, resp.Breakdown, 2)
	// interval 10 selected: safe wait is interval/2.
	assert.Equal(t, 5, resp.Breakdown[1].Timelines.Safe.Wait)
	assert.Equal(t, 10, resp.Breakdown[1].Timelines.Worst.Wait)
	assert.Equal(t, models.SourceSchedule, resp.Breakdown[1].Source)
}

func TestChainRollsOverMidnight(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	legs := []LegData{{
		Route: models.Route{Name: "Late Walk", Mode: models.ModeWalking},
		Logs: []models.TripLog{
			walkLog("23:00:00", "23:30:00"),
		},
	}}

	resp := e.Chain(mustClock(t, "23:50"), legs)

	assert.Equal(t, "00:20", resp.Arrivals.Best)
	assert.Equal(t, "00:20", resp.Arrivals.Safe)
	assert.Equal(t, "00:20", resp.Arrivals.Worst)
}

func TestChainEmptyItinerary(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}

	resp := e.Chain(mustClock(t, "09:15"), nil)

	assert.Equal(t, "09:15", resp.Arrivals.Best)
	assert.Equal(t, "09:15", resp.Arrivals.Safe)
	assert.Equal(t, "09:15", resp.Arrivals.Worst)
	assert.Empty(t, resp.Breakdown)
}

func TestChainFractionalMinutesRoundOnlyAtDisplay(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	// Two walks of 12.5 minutes each: 25 minutes total. Per-leg rounding
	// would give 13+13=26 and a drifted arrival.
	logs := []models.TripLog{walkLog("08:00:00", "08:12:30")}
	legs := []LegData{
		{Route: models.Route{Name: "W1", Mode: models.ModeWalking}, Logs: logs},
		{Route: models.Route{Name: "W2", Mode: models.ModeWalking}, Logs: logs},
	}

	resp := e.Chain(mustClock(t, "08:00"), legs)

	assert.Equal(t, "08:25", resp.Arrivals.Safe)
	// Display values still round per leg.
	assert.Equal(t, 13, resp.Breakdown[0].Timelines.Safe.Travel)
}
