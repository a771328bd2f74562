package response

import (
	"time"

	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/schedule"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID           uuid.UUID  `json:"id"`
	CoachID      uuid.UUID  `json:"coachId"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      time.Time  `json:"endTime"`
	RestoredFrom *uuid.UUID `json:"restoredFrom,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type TimeRangeResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type PreviewSlotsResponse struct {
	Slots []TimeRangeResponse `json:"slots"`
}

type PublishSlotsResponse struct {
	Requested int             `json:"requested"`
	Created   int             `json:"created"`
	Skipped   int             `json:"skipped"`
	Slots     []*SlotResponse `json:"slots"`
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		panic(err)
	}
	return res
}

func FromPreview(r *commands.PreviewSlotsResult) *PreviewSlotsResponse {
	return &PreviewSlotsResponse{Slots: fromRanges(r.Slots)}
}

func FromPublish(r *commands.PublishSlotsResult) *PublishSlotsResponse {
	slots := make([]*SlotResponse, len(r.Created))
	for i, s := range r.Created {
		slots[i] = fromSlot(s)
	}
	return &PublishSlotsResponse{
		Requested: r.Requested,
		Created:   len(r.Created),
		Skipped:   r.Requested - len(r.Created),
		Slots:     slots,
	}
}

func fromSlot(s *availability.Slot) *SlotResponse {
	return &SlotResponse{
		ID:           s.ID(),
		CoachID:      s.CoachID(),
		StartTime:    s.StartTime(),
		EndTime:      s.EndTime(),
		RestoredFrom: s.RestoredFrom(),
		CreatedAt:    s.CreatedAt(),
	}
}

func fromRanges(ranges []schedule.TimeRange) []TimeRangeResponse {
	res := make([]TimeRangeResponse, len(ranges))
	for i, r := range ranges {
		res[i] = TimeRangeResponse{StartTime: r.Start, EndTime: r.End}
	}
	return res
}
