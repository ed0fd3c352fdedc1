package testutil

import "time"

// ReferenceTime is the instant HTTP tests build SampleBoard at.
var ReferenceTime = time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
