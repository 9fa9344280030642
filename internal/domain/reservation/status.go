package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BlocksSlot reports whether a reservation in this status occupies its
// time slot. Completed and cancelled reservations free the slot.
func BlocksSlot(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// BlockingStatuses is the status set the availability scan filters on.
func BlockingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
