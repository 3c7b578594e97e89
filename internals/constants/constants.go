package constants

// User roles.
const (
	RoleHeadmaster  = "headmaster"
	RoleCoordinator = "coordinator"
	RoleTeacher     = "teacher"
)

// User statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Teacher contract types.
const (
	ContractFullTime   = "full-time"
	ContractPartTime   = "part-time"
	ContractSubstitute = "substitute"
)

const (
	// MaxAssignableHours caps teaching + admin assignable hours per teacher.
	MaxAssignableHours = 70

	// MinutesInDay bounds any start-of-day / start-of-break minute offset.
	MinutesInDay = 1440
)
