package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/notification"
	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const claimEndpoint = "POST /coaches/:coachID/slots/:slotID/claim"

type ClaimSlotRequest struct {
	CoachID        uuid.UUID
	SlotID         uuid.UUID
	IdempotencyKey *uuid.UUID
}

type ClaimSlotResult struct {
	AppointmentID uuid.UUID
	IsReplayed    bool
}

type BookingCommands interface {
	// ClaimSlot turns an open slot into a pending appointment. The slot is deleted in the same
	// transaction, so at most one claim per slot can succeed.
	ClaimSlot(ctx context.Context, actor shared.Actor, req ClaimSlotRequest) (*ClaimSlotResult, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	feed  shared.EventPublisher
	clock clock.Clock
	ttl   time.Duration
}

func NewBookingUseCase(uow shared.UnitOfWork, feed shared.EventPublisher, clk clock.Clock, cfg config.BookingConfig) BookingCommands {
	return &bookingUseCaseImpl{
		uow:   uow,
		feed:  feed,
		clock: clk,
		ttl:   cfg.IdempotencyTTL,
	}
}

func (uc *bookingUseCaseImpl) ClaimSlot(ctx context.Context, actor shared.Actor, req ClaimSlotRequest) (*ClaimSlotResult, error) {
	if actor.Role != user.RoleMember {
		return nil, ErrForbidden
	}

	now := uc.clock.Now()
	requestHash := claimRequestHash(req)
	events := newLiveEvents(uc.feed, now)

	var result *ClaimSlotResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		events.queued = nil

		if req.IdempotencyKey != nil {
			replay, derr := uc.checkIdempotency(ctx, tx, *req.IdempotencyKey, actor.ID, requestHash, now)
			if derr != nil {
				return derr
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		m, derr := tx.Reads().MemberByID(ctx, actor.ID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrMemberNotFound
			}
			return derr
		}
		if !m.IsActive {
			return ErrForbidden
		}

		slot, derr := tx.Slots().Claim(ctx, tx.DB(), req.CoachID, req.SlotID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return uc.missingSlot(ctx, tx, req)
			}
			return derr
		}

		a, derr := appointment.NewFromClaim(slot, appointment.MemberSnapshot{
			ID:    m.ID,
			Name:  m.Name,
			Email: user.ReconstructEmail(m.Email),
		}, now)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidInput)
		}

		if derr = tx.Appointments().Create(ctx, tx.DB(), a); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrSlotGone
			}
			return derr
		}

		derr = enqueueNotification(ctx, tx, notification.Payload{
			Kind:          notification.KindAppointmentRequested,
			RecipientID:   a.CoachID(),
			AppointmentID: a.ID(),
			ActorName:     m.Name,
			StartTime:     a.TimeRange().Start,
			EndTime:       a.TimeRange().End,
		}, now)
		if derr != nil {
			return derr
		}

		if req.IdempotencyKey != nil {
			derr = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *req.IdempotencyKey, actor.ID, idHash(a.ID()), a.ID())
			if derr != nil {
				return derr
			}
		}

		events.slot(shared.EventSlotDeleted, slot)
		events.appointment(shared.EventAppointmentCreated, a)
		result = &ClaimSlotResult{AppointmentID: a.ID()}
		return nil
	})
	if err != nil {
		return nil, markUnexpected(err)
	}

	if !result.IsReplayed {
		slog.Info("slot claimed",
			"appointment_id", result.AppointmentID,
			"coach_id", req.CoachID,
			"member_id", actor.ID)
	}
	events.flush(ctx)
	return result, nil
}

// checkIdempotency registers the key inside the claim transaction. A concurrent request with the
// same key blocks on the insert until the first one commits, then sees its completed record.
// missingSlot tells a slot filed under another coach (404) from one taken by a concurrent claim (409).
func (uc *bookingUseCaseImpl) missingSlot(ctx context.Context, tx shared.Tx, req ClaimSlotRequest) error {
	other, err := tx.Slots().FindByID(ctx, tx.DB(), req.SlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotGone
		}
		return err
	}
	if other.CoachID() != req.CoachID {
		return ErrSlotNotFound
	}
	return ErrSlotGone
}

func (uc *bookingUseCaseImpl) checkIdempotency(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*ClaimSlotResult, error) {
	expiresAt := now.Add(uc.ttl)
	if err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, claimEndpoint, requestHash, expiresAt); err != nil {
		return nil, err
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}

	if !existing.ExpiresAt.After(now) {
		n, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt, now)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrRequestInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrDuplicateRequest
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultAppointmentID == nil {
			return nil, errs.New("completed request missing result appointment ID")
		}
		return &ClaimSlotResult{AppointmentID: *existing.ResultAppointmentID, IsReplayed: true}, nil
	case shared.IdempotencyProcessing:
		// Only this transaction can hold an uncommitted processing row
		return nil, nil
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func claimRequestHash(req ClaimSlotRequest) string {
	hash := sha256.Sum256([]byte(claimEndpoint + "|" + req.CoachID.String() + "|" + req.SlotID.String()))
	return hex.EncodeToString(hash[:])
}

func idHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
