package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider  = "provider"
	AttrOperation = "operation"
	AttrYear      = "year"
	AttrOutcome   = "outcome"
)
