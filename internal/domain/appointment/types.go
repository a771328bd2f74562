package appointment

type Status string

const (
	StatusPending            Status = "pending"
	StatusConfirmed          Status = "confirmed"
	StatusCancelledByMember  Status = "cancelled_by_member"
	StatusCancelledByTrainer Status = "cancelled_by_trainer"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelledByMember, StatusCancelledByTrainer:
		return true
	default:
		return false
	}
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelledByMember || s == StatusCancelledByTrainer
}

// Holds reports whether the appointment still occupies its time range.
func (s Status) Holds() bool {
	return s == StatusPending || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Party is the side of the appointment acting on it.
type Party string

const (
	PartyMember  Party = "member"
	PartyTrainer Party = "trainer"
)

func (p Party) cancelledStatus() Status {
	if p == PartyMember {
		return StatusCancelledByMember
	}
	return StatusCancelledByTrainer
}

// Counterpart is the side that gets notified about an action taken by p.
func (p Party) Counterpart() Party {
	if p == PartyMember {
		return PartyTrainer
	}
	return PartyMember
}
