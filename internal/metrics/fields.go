package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrLabel    = "label"
	AttrKind     = "kind"
	AttrOutcome  = "outcome"
)
