package converter

import (
	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/schedule"
	"fitcoach-booking/internal/domain/user"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	m := a.Member()
	return sqlc.CreateAppointmentParams{
		ID:                 a.ID(),
		CoachID:            a.CoachID(),
		MemberID:           m.ID,
		MemberName:         m.Name,
		MemberEmail:        m.Email.Value(),
		StartTime:          pgconv.TimeToPgtype(a.TimeRange().Start),
		EndTime:            pgconv.TimeToPgtype(a.TimeRange().End),
		Status:             a.Status().String(),
		CancellationReason: pgconv.StringPtrToPgtype(a.CancellationReason().Ptr()),
		CreatedAt:          pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToStatusParams(a *appointment.Appointment, expected appointment.Status) sqlc.UpdateAppointmentStatusParams {
	return sqlc.UpdateAppointmentStatusParams{
		Status:             a.Status().String(),
		CancellationReason: pgconv.StringPtrToPgtype(a.CancellationReason().Ptr()),
		UpdatedAt:          pgconv.TimeToPgtype(a.UpdatedAt()),
		ID:                 a.ID(),
		ExpectedStatus:     expected.String(),
	}
}

// AppointmentFromInfra rebuilds the entity from a stored row.
func AppointmentFromInfra(row sqlc.Appointments) (*appointment.Appointment, error) {
	status, err := appointment.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	reason, err := appointment.NewReason(pgconv.StringFromPgtype(row.CancellationReason))
	if err != nil {
		return nil, err
	}

	return appointment.ReconstructAppointment(
		row.ID,
		row.CoachID,
		appointment.MemberSnapshot{ID: row.MemberID, Name: row.MemberName, Email: user.ReconstructEmail(row.MemberEmail)},
		schedule.TimeRange{
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		},
		status,
		reason,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
