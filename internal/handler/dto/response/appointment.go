package response

import (
	"time"

	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID                 uuid.UUID `json:"id"`
	CoachID            uuid.UUID `json:"coachId"`
	MemberID           uuid.UUID `json:"memberId"`
	MemberName         string    `json:"memberName"`
	MemberEmail        string    `json:"memberEmail"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	Status             string    `json:"status"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type ClaimSlotResponse struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	Replayed      bool      `json:"replayed"`
}

type CalendarResponse struct {
	CoachID      uuid.UUID              `json:"coachId"`
	From         time.Time              `json:"from"`
	To           time.Time              `json:"to"`
	Slots        []*SlotResponse        `json:"slots"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

type MemberCreditResponse struct {
	MemberID          uuid.UUID `json:"memberId"`
	TotalSessions     int32     `json:"totalSessions"`
	UsedSessions      int32     `json:"usedSessions"`
	RemainingSessions int32     `json:"remainingSessions"`
	ConfirmedCount    int64     `json:"confirmedCount"`
	InSync            bool      `json:"inSync"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	res := &AppointmentResponse{}
	if err := copier.Copy(res, v); err != nil {
		panic(err)
	}
	return res
}

func FromAppointmentViews(views []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		res[i] = FromAppointmentView(v)
	}
	return res
}

func FromCalendar(s *queries.CalendarSnapshot) *CalendarResponse {
	return &CalendarResponse{
		CoachID:      s.CoachID,
		From:         s.From,
		To:           s.To,
		Slots:        FromSlotViews(s.Slots),
		Appointments: FromAppointmentViews(s.Appointments),
	}
}

func FromMemberCredit(v *queries.MemberCreditView) *MemberCreditResponse {
	res := &MemberCreditResponse{}
	if err := copier.Copy(res, v); err != nil {
		panic(err)
	}
	return res
}
