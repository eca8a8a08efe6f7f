package matching

import "errors"

var ErrComparisonTooFew = errors.New("comparison needs at least two destinations")

const (
	AttrFitScore     = "fit_score"
	AttrAvgDailyCost = "avg_daily_cost"
	AttrFlightHours  = "flight_hours"
)

// Entry is one matched destination offered for comparison.
type Entry struct {
	Profile DestinationProfile
	Match   MatchResult
}

// Cell is one destination's value for an attribute. Value is nil when the
// destination has no data for it.
type Cell struct {
	DestinationID string   `json:"destination_id"`
	Value         *float64 `json:"value"`
	Best          bool     `json:"best"`
}

type Row struct {
	Attribute     string `json:"attribute"`
	LowerIsBetter bool   `json:"lower_is_better"`
	Cells         []Cell `json:"cells"`
}

type Comparison struct {
	DestinationIDs []string `json:"destination_ids"`
	Rows           []Row    `json:"rows"`
}

// Compare lays out entries side by side. In every row each destination
// holding the best value is marked, so ties produce several winners. Missing
// values never win.
func Compare(entries []Entry) (Comparison, error) {
	if len(entries) < 2 {
		return Comparison{}, ErrComparisonTooFew
	}

	cmp := Comparison{DestinationIDs: make([]string, 0, len(entries))}
	for _, e := range entries {
		cmp.DestinationIDs = append(cmp.DestinationIDs, e.Profile.ID)
	}

	cmp.Rows = append(cmp.Rows,
		buildRow(AttrFitScore, false, entries, func(e Entry) *float64 {
			v := e.Match.FitScore
			return &v
		}),
		buildRow(AttrAvgDailyCost, true, entries, func(e Entry) *float64 { return e.Profile.AvgDailyCost }),
		buildRow(AttrFlightHours, true, entries, func(e Entry) *float64 { return e.Profile.FlightHours }),
	)
	for _, d := range Dimensions {
		d := d
		cmp.Rows = append(cmp.Rows, buildRow(string(d), false, entries, func(e Entry) *float64 {
			v, ok := e.Profile.Dimensions.Get(d)
			if !ok {
				return nil
			}
			return &v
		}))
	}
	return cmp, nil
}

func buildRow(attr string, lowerIsBetter bool, entries []Entry, value func(Entry) *float64) Row {
	row := Row{Attribute: attr, LowerIsBetter: lowerIsBetter, Cells: make([]Cell, len(entries))}

	var best *float64
	for i, e := range entries {
		v := value(e)
		row.Cells[i] = Cell{DestinationID: e.Profile.ID, Value: v}
		if v == nil {
			continue
		}
		if best == nil || (lowerIsBetter && *v < *best) || (!lowerIsBetter && *v > *best) {
			best = v
		}
	}
	if best == nil {
		return row
	}
	for i := range row.Cells {
		if v := row.Cells[i].Value; v != nil && *v == *best {
			row.Cells[i].Best = true
		}
	}
	return row
}

// Row returns the row for attr.
func (c Comparison) Row(attr string) (Row, bool) {
	for _, r := range c.Rows {
		if r.Attribute == attr {
			return r, true
		}
	}
	return Row{}, false
}

// BestIDs lists the destinations marked best in the row.
func (r Row) BestIDs() []string {
	var ids []string
	for _, c := range r.Cells {
		if c.Best {
			ids = append(ids, c.DestinationID)
		}
	}
	return ids
}
