package commands

import (
	"context"
	"log/slog"
	"time"

	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/schedule"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotPlanRequest struct {
	Date        string
	StartTime   string
	EndTime     string
	DurationMin int
}

type PreviewSlotsResult struct {
	Slots []schedule.TimeRange
}

type PublishSlotsResult struct {
	Requested int
	Created   []*availability.Slot
}

type AvailabilityCommands interface {
	PreviewSlots(ctx context.Context, actor shared.Actor, req SlotPlanRequest) (*PreviewSlotsResult, error)
	PublishSlots(ctx context.Context, actor shared.Actor, req SlotPlanRequest) (*PublishSlotsResult, error)
	DeleteSlot(ctx context.Context, actor shared.Actor, slotID uuid.UUID) error
}

type availabilityUseCaseImpl struct {
	uow      shared.UnitOfWork
	feed     shared.EventPublisher
	clock    clock.Clock
	loc      *time.Location
	maxSlots int
}

func NewAvailabilityUseCase(uow shared.UnitOfWork, feed shared.EventPublisher, clk clock.Clock, cfg config.BookingConfig) (AvailabilityCommands, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &availabilityUseCaseImpl{
		uow:      uow,
		feed:     feed,
		clock:    clk,
		loc:      loc,
		maxSlots: cfg.MaxSlotsPerPlan,
	}, nil
}

func (uc *availabilityUseCaseImpl) PreviewSlots(_ context.Context, actor shared.Actor, req SlotPlanRequest) (*PreviewSlotsResult, error) {
	if !actor.Role.CanActAsTrainer() {
		return nil, ErrForbidden
	}

	plan, err := uc.plan(req)
	if err != nil {
		return nil, err
	}

	return &PreviewSlotsResult{Slots: plan.Collect()}, nil
}

func (uc *availabilityUseCaseImpl) PublishSlots(ctx context.Context, actor shared.Actor, req SlotPlanRequest) (*PublishSlotsResult, error) {
	if !actor.Role.CanActAsTrainer() {
		return nil, ErrForbidden
	}

	plan, err := uc.plan(req)
	if err != nil {
		return nil, err
	}

	slots, err := availability.SlotsFromPlan(actor.ID, plan)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	if len(slots) == 0 {
		return &PublishSlotsResult{}, nil
	}

	var created []*availability.Slot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, derr := tx.Slots().CreateMany(ctx, tx.DB(), actor.ID, slots)
		if derr != nil {
			return derr
		}
		created = inserted
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("slots published",
		"coach_id", actor.ID,
		"requested", len(slots),
		"created", len(created))

	events := newLiveEvents(uc.feed, uc.clock.Now())
	if len(created) > 0 {
		changes := make([]shared.SlotChange, len(created))
		for i, s := range created {
			changes[i] = slotChange(s)
		}
		events.add(shared.CalendarTopic(actor.ID), shared.EventSlotsPublished, changes)
	}
	events.flush(ctx)

	return &PublishSlotsResult{Requested: len(slots), Created: created}, nil
}

func (uc *availabilityUseCaseImpl) DeleteSlot(ctx context.Context, actor shared.Actor, slotID uuid.UUID) error {
	if !actor.Role.CanActAsTrainer() {
		return ErrForbidden
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Delete(ctx, tx.DB(), actor.ID, slotID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	events := newLiveEvents(uc.feed, uc.clock.Now())
	events.add(shared.CalendarTopic(actor.ID), shared.EventSlotDeleted, shared.SlotChange{ID: slotID, CoachID: actor.ID})
	events.flush(ctx)
	return nil
}

func (uc *availabilityUseCaseImpl) plan(req SlotPlanRequest) (*schedule.Plan, error) {
	plan, err := schedule.NewPlan(schedule.PlanInput{
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		DurationMin: req.DurationMin,
		Location:    uc.loc,
	}, uc.maxSlots)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	return plan, nil
}
