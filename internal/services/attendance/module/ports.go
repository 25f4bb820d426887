package module

import dom "timeclock/internal/services/attendance/domain"

// Ports holds the ports exposed by the attendance module
type Ports struct {
	Punches dom.PunchPort
	Admin   dom.AdminPort
}
