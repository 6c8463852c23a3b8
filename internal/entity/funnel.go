package entity

// FunnelReport is the aggregated conversion report returned by the
// analytics endpoint. Every number here is server-computed; this tier
// only derives presentation values from it.
type FunnelReport struct {
	GeneratedAt  string        `json:"generated_at"`
	TotalEntries int           `json:"total_entries"`
	Stages       []FunnelStage `json:"stages"`
}

// FunnelStage is one step of the conversion pipeline, in pipeline order.
type FunnelStage struct {
	Key            string      `json:"key"`  // e.g. "interest", "matched", "converted"
	Name           string      `json:"name"` // display label
	Count          int         `json:"count"`
	ConversionRate float64     `json:"conversion_rate"` // vs previous stage, 0..100
	DropOffRate    float64     `json:"drop_off_rate"`   // vs previous stage, 0..100
	Detail         StageDetail `json:"detail"`
}

// StageDetail is the diagnostic panel content, rendered verbatim.
type StageDetail struct {
	Bottlenecks    []string `json:"bottlenecks"`
	Suggestions    []string `json:"suggestions"`
	BenchmarkRate  float64  `json:"benchmark_rate"`
	BenchmarkDelta float64  `json:"benchmark_delta"`
	AvgDaysInStage float64  `json:"avg_days_in_stage"`
}
