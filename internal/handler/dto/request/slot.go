package request

import (
	"fitcoach-booking/internal/usecase/commands"
)

// SlotPlanRequest describes one day window cut into equal slots. Date and times
// are wall-clock values in the booking time zone.
type SlotPlanRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" binding:"required,datetime=15:04"`
	EndTime     string `json:"endTime" binding:"required,datetime=15:04"`
	DurationMin int    `json:"durationMin" binding:"required,min=5,max=480"`
}

func (r *SlotPlanRequest) ToCommand() commands.SlotPlanRequest {
	return commands.SlotPlanRequest{
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		DurationMin: r.DurationMin,
	}
}
