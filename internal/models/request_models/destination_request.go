package request_models

// DestinationFilter narrows catalog reads. Empty fields do not filter.
type DestinationFilter struct {
	Region     string `form:"region" json:"region,omitempty"`
	Tier       string `form:"tier" json:"tier,omitempty"`
	ActiveOnly bool   `form:"active_only" json:"active_only,omitempty"`
}

// CacheKey is stable for equal filters.
func (f DestinationFilter) CacheKey() string {
	active := "all"
	if f.ActiveOnly {
		active = "active"
	}
	return "region=" + f.Region + "|tier=" + f.Tier + "|" + active
}
