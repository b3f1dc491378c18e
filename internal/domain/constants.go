package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

const (
	PriorityLow       = "Low"
	PriorityMedium    = "Medium"
	PriorityHigh      = "High"
	PriorityEmergency = "Emergency"
)

// Audit log actions
const (
	ActionUpdateStatus = "UPDATE_STATUS"
	ActionUpdateRole   = "UPDATE_ROLE"
	ActionDelete       = "DELETE"
	ActionLogout       = "LOGOUT"
	ActionClearLogs    = "CLEAR_LOGS"
)

// Audit log target types
const (
	TargetReport = "report"
	TargetUser   = "user"
	TargetSystem = "system"
)

const NotificationTypeStatusUpdate = "status_update"

// ProblemTypes are the categories a report can be filed under. Clients may
// decorate them for display ("🛣️ Road - Potholes or road damage"); only the
// canonical label is stored.
var ProblemTypes = []string{
	"Traffic",
	"Waste",
	"Water",
	"Power",
	"Road",
	"Environment",
	"Public Facility",
	"Emergency",
	"Other",
}

var Statuses = []string{StatusPending, StatusInProgress, StatusResolved}

var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}
