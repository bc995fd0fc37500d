package models

// EstimateSource tags where a leg's numbers came from, so the client can
// tell a prediction built from real history apart from one built from
// schedule headways or bare defaults.
type EstimateSource string

const (
	SourceHistorical EstimateSource = "historical"
	SourceSchedule   EstimateSource = "schedule"
	SourceDefault    EstimateSource = "default"
)

// PredictRequest is the body for POST /predict. RouteIDs are in itinerary
// order. Date is an optional ISO date ("2006-01-02") used only to resolve
// the day type; it defaults to today.
type PredictRequest struct {
	RouteIDs  []string `json:"route_ids" validate:"required,min=1,dive,required"`
	StartTime string   `json:"start_time" validate:"required"`
	Date      string   `json:"date"`
}

// LegTimes is one scenario's wait and travel minutes for a leg, rounded for
// display.
type LegTimes struct {
	Wait   int `json:"wait"`
	Travel int `json:"travel"`
}

// ClockStrings holds the three scenario clocks formatted as 24-hour "HH:MM".
type ClockStrings struct {
	Best  string `json:"best"`
	Safe  string `json:"safe"`
	Worst string `json:"worst"`
}

// LegBreakdown is the per-leg detail of a prediction.
type LegBreakdown struct {
	Name        string         `json:"name"`
	Mode        Mode           `json:"mode"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Source      EstimateSource `json:"source"`
	Timelines   struct {
		Safe  LegTimes `json:"safe"`
		Worst LegTimes `json:"worst"`
	} `json:"timelines"`
	ArrivalTime ClockStrings `json:"arrival_time"`
}

// PredictResponse is the full prediction: final arrivals for the three
// scenarios plus the ordered per-leg breakdown.
type PredictResponse struct {
	Arrivals  ClockStrings   `json:"arrivals"`
	Breakdown []LegBreakdown `json:"breakdown"`
}
