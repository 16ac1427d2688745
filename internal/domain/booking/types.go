package booking

type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// OccupiesHalls reports whether reservations in this status count for
// hall conflict checks. Cancelled reservations release their halls.
func (s Status) OccupiesHalls() bool {
	return s != StatusCancelled
}
