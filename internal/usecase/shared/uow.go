package shared

import (
	"context"
	"time"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/member"
	"fitcoach-booking/internal/domain/notification"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Appointments() AppointmentRepository
	Members() MemberRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Inbox() InboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	MemberByID(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type SlotRepository interface {
	// CreateMany inserts the slots, skipping ranges the coach already has. Returns the inserted ones.
	CreateMany(ctx context.Context, tx sqlc.DBTX, coachID uuid.UUID, slots []*availability.Slot) ([]*availability.Slot, error)
	// Claim deletes the slot and returns what was deleted. NOT_FOUND when it is already gone.
	Claim(ctx context.Context, tx sqlc.DBTX, coachID, slotID uuid.UUID) (*availability.Slot, error)
	// Restore reinserts a compensating slot. false when an equal slot already exists.
	Restore(ctx context.Context, tx sqlc.DBTX, slot *availability.Slot) (bool, error)
	Delete(ctx context.Context, tx sqlc.DBTX, coachID, slotID uuid.UUID) error
	// FindByID looks the slot up under any coach. NOT_FOUND when it does not exist.
	FindByID(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (*availability.Slot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	// UpdateStatus writes the new status only if the stored one still equals expected.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, expected appointment.Status) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expected appointment.Status) error
}

type MemberRepository interface {
	FindCreditForUpdate(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID) (*member.Credit, error)
	SaveCredit(ctx context.Context, tx sqlc.DBTX, credit *member.Credit, now time.Time) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (int64, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, appointmentID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

// NotificationRepository is the outbox.
type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, recipientID uuid.UUID, payload []byte, runAt time.Time) error
	// ClaimDue locks the oldest due job, skipping rows locked by other dispatchers. NOT_FOUND when idle.
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time) (*NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status notification.JobStatus, attempts int, lastError *string, runAt time.Time) error
}

type InboxRepository interface {
	// Deliver stores the inbox row. false when the job was already delivered.
	Deliver(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) (bool, error)
	MarkRead(ctx context.Context, tx sqlc.DBTX, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error)
}
