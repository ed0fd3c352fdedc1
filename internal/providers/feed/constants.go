package feed

import "time"

const (
	providerName = "feed"

	defaultStatsURL    = "https://raw.githubusercontent.com/zurkstk/projetonba/refs/heads/main/stats.json"
	defaultScheduleURL = "https://raw.githubusercontent.com/zurkstk/projetonba/refs/heads/main/schedule.json"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)
