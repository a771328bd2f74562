package commands

import (
	"context"
	"log/slog"
	"time"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/member"
	"fitcoach-booking/internal/domain/notification"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentCommands interface {
	Approve(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) error
	Reject(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, reason string) error
	Cancel(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, reason string) error
}

type appointmentUseCaseImpl struct {
	uow   shared.UnitOfWork
	feed  shared.EventPublisher
	clock clock.Clock
}

func NewAppointmentUseCase(uow shared.UnitOfWork, feed shared.EventPublisher, clk clock.Clock) AppointmentCommands {
	return &appointmentUseCaseImpl{
		uow:   uow,
		feed:  feed,
		clock: clk,
	}
}

// transition is one status change requested by an actor.
type transition struct {
	kind      notification.Kind
	trainerOp bool
	apply     func(a *appointment.Appointment, by appointment.Party, now time.Time) (appointment.Outcome, error)
}

func (uc *appointmentUseCaseImpl) Approve(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID) error {
	return uc.run(ctx, actor, appointmentID, transition{
		kind:      notification.KindAppointmentConfirmed,
		trainerOp: true,
		apply: func(a *appointment.Appointment, _ appointment.Party, now time.Time) (appointment.Outcome, error) {
			return a.Approve(now)
		},
	})
}

func (uc *appointmentUseCaseImpl) Reject(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, reason string) error {
	r, err := appointment.NewReason(reason)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}
	return uc.run(ctx, actor, appointmentID, transition{
		kind:      notification.KindAppointmentRejected,
		trainerOp: true,
		apply: func(a *appointment.Appointment, _ appointment.Party, now time.Time) (appointment.Outcome, error) {
			return a.Reject(r, now)
		},
	})
}

func (uc *appointmentUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, reason string) error {
	r, err := appointment.NewReason(reason)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}
	return uc.run(ctx, actor, appointmentID, transition{
		kind: notification.KindAppointmentCancelled,
		apply: func(a *appointment.Appointment, by appointment.Party, now time.Time) (appointment.Outcome, error) {
			return a.Cancel(by, r, now)
		},
	})
}

// run locks the appointment, applies the transition and its compensating writes, and
// enqueues the counterpart notification, all in one transaction.
func (uc *appointmentUseCaseImpl) run(ctx context.Context, actor shared.Actor, appointmentID uuid.UUID, t transition) error {
	now := uc.clock.Now()
	events := newLiveEvents(uc.feed, now)

	var outcome appointment.Outcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events.queued = nil

		a, derr := tx.Appointments().FindForUpdate(ctx, tx.DB(), appointmentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return derr
		}

		party, derr := a.PartyOf(actor.ID, actor.Role)
		if derr != nil {
			return errs.Mark(derr, ErrForbidden)
		}
		if t.trainerOp && party != appointment.PartyTrainer {
			return ErrForbidden
		}

		actorName, derr := uc.actorName(ctx, tx, actor, a)
		if derr != nil {
			return derr
		}

		outcome, derr = t.apply(a, party, now)
		if derr != nil {
			return errs.Mark(derr, ErrPreconditionFailed)
		}

		if derr = uc.applyOutcome(ctx, tx, a, outcome, now, events); derr != nil {
			return derr
		}

		recipient := a.MemberID()
		if party == appointment.PartyMember {
			recipient = a.CoachID()
		}
		return enqueueNotification(ctx, tx, notification.Payload{
			Kind:          t.kind,
			RecipientID:   recipient,
			AppointmentID: a.ID(),
			ActorName:     actorName,
			StartTime:     a.TimeRange().Start,
			EndTime:       a.TimeRange().End,
			Reason:        a.CancellationReason().Value(),
		}, now)
	})
	if err != nil {
		return markUnexpected(err)
	}

	slog.Info("appointment transitioned",
		"appointment_id", appointmentID,
		"actor_id", actor.ID,
		"from", outcome.From,
		"to", outcome.To,
		"deleted", outcome.Delete,
		"credit_delta", outcome.CreditDelta)
	events.flush(ctx)
	return nil
}

func (uc *appointmentUseCaseImpl) applyOutcome(
	ctx context.Context,
	tx shared.Tx,
	a *appointment.Appointment,
	out appointment.Outcome,
	now time.Time,
	events *liveEvents,
) error {
	var err error
	if out.Delete {
		err = tx.Appointments().Delete(ctx, tx.DB(), a.ID(), out.From)
	} else {
		err = tx.Appointments().UpdateStatus(ctx, tx.DB(), a, out.From)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrPreconditionFailed)
		}
		return err
	}

	if out.CreditDelta != 0 {
		credit, err := tx.Members().FindCreditForUpdate(ctx, tx.DB(), a.MemberID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		if err = credit.Apply(out.CreditDelta); err != nil {
			if errs.Is(err, member.ErrNoCreditToRelease) {
				slog.Error("member credit drifted below confirmed appointments",
					"appointment_id", a.ID(), "member_id", a.MemberID())
				return errs.Mark(err, ErrCreditOutOfSync)
			}
			return err
		}
		if err = tx.Members().SaveCredit(ctx, tx.DB(), credit, now); err != nil {
			return err
		}
	}

	if out.Delete {
		events.appointment(shared.EventAppointmentDeleted, a)
	} else {
		events.appointment(shared.EventAppointmentUpdated, a)
	}

	if out.RestoreSlot {
		slot, err := a.RestoredSlot()
		if err != nil {
			return err
		}
		restored, err := tx.Slots().Restore(ctx, tx.DB(), slot)
		if err != nil {
			return err
		}
		if restored {
			events.slot(shared.EventSlotRestored, slot)
		}
	}
	return nil
}

func (uc *appointmentUseCaseImpl) actorName(ctx context.Context, tx shared.Tx, actor shared.Actor, a *appointment.Appointment) (string, error) {
	if actor.ID == a.MemberID() {
		return a.Member().Name, nil
	}
	u, err := tx.Reads().UserByID(ctx, actor.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrForbidden
		}
		return "", err
	}
	return u.Name, nil
}
