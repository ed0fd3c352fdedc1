package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrSortMode = "sort_mode"
	AttrBackend  = "backend"
	AttrOutcome  = "outcome"

	outcomeOK    = "ok"
	outcomeError = "error"
)

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}
