package repository

import (
	"context"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/infra/repository/converter"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
	DeleteAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteAppointmentParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	if err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}

	a, err := converter.AppointmentFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert appointment row", err)
	}
	return a, nil
}

// UpdateStatus is a compare-and-set on status; a lost race surfaces as CONFLICT.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment, expected appointment.Status) error {
	n, err := r.queries.UpdateAppointmentStatus(ctx, tx, converter.AppointmentToStatusParams(a, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expected appointment.Status) error {
	n, err := r.queries.DeleteAppointment(ctx, tx, sqlc.DeleteAppointmentParams{ID: id, Status: expected.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
