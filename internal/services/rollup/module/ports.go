package module

import dom "timeclock/internal/services/rollup/domain"

// Ports holds the ports exposed by the rollup module
type Ports struct {
	Aggregator dom.AggregatorPort
	Reports    dom.ReportsPort
}
