package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	Timezone string `json:"timezone,omitempty"`
}

type KPIBlock struct {
	SessionsStarted    int64   `json:"sessions_started"`
	SessionsSubmitted  int64   `json:"sessions_submitted"`
	CompletionPct      float64 `json:"completion_pct"`
	RespondentsScored  int64   `json:"respondents_scored"`
	ActiveDestinations int64   `json:"active_destinations"`
	StoredMatches      int64   `json:"stored_matches"`
	AvgTopFit          float64 `json:"avg_top_fit"`
	FeedbackCount      int64   `json:"feedback_count"`
	AvgRating          float64 `json:"avg_rating"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
}

type TopDestination struct {
	DestinationID string  `json:"destination_id"`
	Name          string  `json:"name"`
	TopRankCount  int64   `json:"top_rank_count"`
	AvgFit        float64 `json:"avg_fit"`
}

type BandCount struct {
	Band  string `json:"band"`
	Count int64  `json:"count"`
}

type DashboardReport struct {
	Range           TimeRange        `json:"range"`
	KPIs            KPIBlock         `json:"kpis"`
	NewSessions     CountSeries      `json:"new_sessions"`
	Submissions     CountSeries      `json:"submissions"`
	TopDestinations []TopDestination `json:"top_destinations"`
	FitBands        []BandCount      `json:"fit_bands"`
}
