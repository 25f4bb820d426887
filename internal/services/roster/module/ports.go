package module

import dom "timeclock/internal/services/roster/domain"

// Ports holds the ports exposed by the roster module
type Ports struct {
	Users    dom.UsersPort
	Accounts dom.AccountsPort
	Admin    dom.AdminPort
}
