package notification

type Kind string

const (
	KindAppointmentRequested Kind = "appointment_requested"
	KindAppointmentConfirmed Kind = "appointment_confirmed"
	KindAppointmentRejected  Kind = "appointment_rejected"
	KindAppointmentCancelled Kind = "appointment_cancelled"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindAppointmentRequested, KindAppointmentConfirmed, KindAppointmentRejected, KindAppointmentCancelled:
		return true
	default:
		return false
	}
}

// Outbox job status.
type JobStatus string

const (
	JobQueued JobStatus = "queued"
	JobSent   JobStatus = "sent"
	JobDead   JobStatus = "dead"
)

// Channel is the outbox job kind. Only the in-app inbox is delivered here.
const ChannelInApp = "in_app"
