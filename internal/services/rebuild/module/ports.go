package module

import dom "timeclock/internal/services/rebuild/domain"

// Ports holds the ports exposed by the rebuild module
type Ports struct {
	Runner dom.RunnerPort
}
