package prediction

import (
	"testing"
	"time"

	"commutesync/internal/models"
	"commutesync/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleLog(arrived, boarded, departed, dropped string) models.TripLog {
	return models.TripLog{
		TimestampArrivedPickup: arrived,
		TimestampBoarded:       boarded,
		TimestampDeparted:      departed,
		TimestampArrivedDrop:   dropped,
	}
}

func walkLog(start, end string) models.TripLog {
	return models.TripLog{
		TimestampArrivedPickup: start,
		TimestampBoarded:       start,
		TimestampDeparted:      start,
		TimestampArrivedDrop:   end,
	}
}

func mustClock(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseClock(s)
	require.NoError(t, err)
	return parsed
}

func TestEstimateWalkingNoHistory(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}

	est := e.Estimate(models.ModeWalking, nil, nil, mustClock(t, "08:00"))

	assert.Equal(t, models.SourceDefault, est.Source)
	assert.Zero(t, est.Best.Wait)
	assert.Zero(t, est.Safe.Wait)
	assert.Zero(t, est.Worst.Wait)
	assert.Equal(t, 10.0, est.Best.Travel)
	assert.Equal(t, 15.0, est.Safe.Travel)
	assert.Equal(t, 20.0, est.Worst.Travel)
}

func TestEstimateWalkingWithHistory(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	logs := []models.TripLog{
		walkLog("08:00:00", "08:12:00"),
		walkLog("08:00:00", "08:14:00"),
		walkLog("08:00:00", "08:16:00"),
	}

	est := e.Estimate(models.ModeBicycle, logs, nil, mustClock(t, "08:00"))

	assert.Equal(t, models.SourceHistorical, est.Source)
	assert.Zero(t, est.Safe.Wait)
	assert.Equal(t, 12.0, est.Best.Travel)
	assert.Equal(t, 14.0, est.Safe.Travel)
	assert.Equal(t, 16.0, est.Worst.Travel)
}

func TestEstimateVehicleWithHistory(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	logs := []models.TripLog{
		vehicleLog("08:00:00", "08:04:00", "08:05:00", "08:17:00"),
		vehicleLog("08:00:00", "08:06:00", "08:07:00", "08:21:00"),
		vehicleLog("08:00:00", "08:08:00", "08:09:00", "08:25:00"),
	}

	est := e.Estimate(models.ModeBus, logs, nil, mustClock(t, "08:00"))

	assert.Equal(t, models.SourceHistorical, est.Source)

	// Best: vehicle is right there, fastest observed travel.
	assert.Zero(t, est.Best.Wait)
	assert.Equal(t, 12.0, est.Best.Travel)

	// Safe: mean wait and travel.
	assert.Equal(t, 6.0, est.Safe.Wait)
	assert.Equal(t, 14.0, est.Safe.Travel)

	// Worst: max wait plus headway (none known here), max travel.
	assert.Equal(t, 8.0, est.Worst.Wait)
	assert.Equal(t, 16.0, est.Worst.Travel)
}

func TestEstimateVehicleWorstAddsHeadway(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	logs := []models.TripLog{
		vehicleLog("08:00:00", "08:04:00", "08:05:00", "08:17:00"),
	}
	entries := []models.ScheduleEntry{
		{DayType: models.DayTypeWeekday, IntervalMinutes: 10},
	}

	est := e.Estimate(models.ModeJeep, logs, entries, mustClock(t, "08:00"))

	assert.Equal(t, models.SourceHistorical, est.Source)
	assert.Equal(t, 14.0, est.Worst.Wait) // max wait 4 + interval 10
}

func TestEstimateVehicleScheduleOnly(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	entries := []models.ScheduleEntry{
		{DayType: models.DayTypeWeekday, IntervalMinutes: 12},
	}

	est := e.Estimate(models.ModeTrain, nil, entries, mustClock(t, "09:00"))

	assert.Equal(t, models.SourceSchedule, est.Source)
	assert.Zero(t, est.Best.Wait)
	assert.Equal(t, 6.0, est.Safe.Wait)   // interval / 2
	assert.Equal(t, 12.0, est.Worst.Wait) // full interval
	assert.Equal(t, 10.0, est.Best.Travel)
	assert.Equal(t, 15.0, est.Safe.Travel)
	assert.Equal(t, 20.0, est.Worst.Travel)
}

func TestEstimateVehicleBareDefaults(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}

	est := e.Estimate(models.ModeQCBus, nil, nil, mustClock(t, "09:00"))

	assert.Equal(t, models.SourceDefault, est.Source)
	assert.Zero(t, est.Best.Wait)
	assert.Equal(t, 5.0, est.Safe.Wait)
	assert.Equal(t, 15.0, est.Worst.Wait)
}

func TestEstimateCustomModeTreatedAsVehicle(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}

	mode := models.Mode("Habal-habal")
	require.True(t, mode.IsCustom())

	est := e.Estimate(mode, nil, nil, mustClock(t, "09:00"))
	assert.Equal(t, 5.0, est.Safe.Wait) // vehicle path, not duration-only
}

func TestEstimateDropsNonPositiveSamples(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	logs := []models.TripLog{
		// Boarded before arrival and dropped before departure: both deltas
		// negative, both discarded.
		vehicleLog("08:10:00", "08:05:00", "08:30:00", "08:20:00"),
		vehicleLog("08:00:00", "08:04:00", "08:05:00", "08:17:00"),
	}

	est := e.Estimate(models.ModeBus, logs, nil, mustClock(t, "08:00"))

	assert.Equal(t, 4.0, est.Safe.Wait)
	assert.Equal(t, 12.0, est.Safe.Travel)
}

func TestEstimateSingleOutlierDominatesWorst(t *testing.T) {
	// A single bad day stretches the worst scenario without touching best.
	e := Estimator{Defaults: StandardDefaults}
	logs := []models.TripLog{
		vehicleLog("08:00:00", "08:02:00", "08:03:00", "08:15:00"),
		vehicleLog("08:00:00", "08:45:00", "08:46:00", "09:40:00"),
	}

	est := e.Estimate(models.ModeBus, logs, nil, mustClock(t, "08:00"))

	assert.Zero(t, est.Best.Wait)
	assert.Equal(t, 12.0, est.Best.Travel)
	assert.Equal(t, 45.0, est.Worst.Wait)
	assert.Equal(t, 54.0, est.Worst.Travel)
}

func TestMatchIntervalWindowSelection(t *testing.T) {
	entries := []models.ScheduleEntry{
		{IntervalMinutes: 30, StartTime: "05:00:00", EndTime: "06:59:00"},
		{IntervalMinutes: 10, StartTime: "07:00:00", EndTime: "21:00:00"},
	}

	tests := []struct {
		name     string
		legStart string
		want     int
	}{
		{"inside first window", "05:30", 30},
		{"inclusive window start", "07:00", 10},
		{"inside second window", "12:00", 10},
		{"inclusive window end", "21:00", 10},
		{"outside all windows falls back to first entry", "23:00", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchInterval(entries, mustClock(t, tt.legStart))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchIntervalOpenWindows(t *testing.T) {
	// No window bounds means the entry covers the whole day.
	entries := []models.ScheduleEntry{{IntervalMinutes: 15}}
	assert.Equal(t, 15, matchInterval(entries, mustClock(t, "00:00")))
	assert.Equal(t, 15, matchInterval(entries, mustClock(t, "23:59")))
	assert.Equal(t, 0, matchInterval(nil, mustClock(t, "08:00")))
}

func TestEstimateBeforeFirstDeparture(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	entries := []models.ScheduleEntry{
		{IntervalMinutes: 10, StartTime: "05:30:00", EndTime: "22:00:00"},
	}

	est := e.Estimate(models.ModeBus, nil, entries, mustClock(t, "05:00"))

	// 30-minute gap until service starts; the worst case misses the first
	// vehicle too.
	assert.Equal(t, 30.0, est.Best.Wait)
	assert.Equal(t, 30.0, est.Safe.Wait)
	assert.Equal(t, 40.0, est.Worst.Wait)
}

func TestEstimateNoFirstDepartureWithOpenEntry(t *testing.T) {
	e := Estimator{Defaults: StandardDefaults}
	// One entry declares no start: service runs from midnight, no gap.
	entries := []models.ScheduleEntry{
		{IntervalMinutes: 10},
		{IntervalMinutes: 20, StartTime: "06:00:00"},
	}

	est := e.Estimate(models.ModeBus, nil, entries, mustClock(t, "04:00"))

	assert.Zero(t, est.Best.Wait)
	assert.Equal(t, 5.0, est.Safe.Wait) // interval 10 / 2
}
