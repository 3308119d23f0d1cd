package types

const ContextUserKey = "user"

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

var StartupStages = []string{"IDEA", "MVP", "SEED", "GROWTH", "SCALE"}

var ApplicationStatuses = []string{"SUBMITTED", "UNDER_REVIEW", "ACCEPTED", "REJECTED"}

var ClaimStatuses = []string{"FILED", "UNDER_REVIEW", "APPROVED", "REJECTED", "SETTLED"}

func Contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
