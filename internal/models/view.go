package models

// AppView is the screen currently shown by the TUI
type AppView int

const (
	ViewSubmit AppView = iota
	ViewDashboard
)

func (v AppView) String() string {
	switch v {
	case ViewSubmit:
		return "SUBMIT"
	case ViewDashboard:
		return "DASHBOARD"
	default:
		return "UNKNOWN"
	}
}
