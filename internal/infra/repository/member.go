package repository

import (
	"context"
	"time"

	"fitcoach-booking/internal/domain/member"
	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MemberWriteQueries interface {
	GetMemberProfileForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.MemberProfiles, error)
	UpdateMemberUsedSessions(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMemberUsedSessionsParams) (int64, error)
}

type MemberRepository struct {
	queries MemberWriteQueries
	db      sqlc.DBTX
}

func NewMemberRepository(queries MemberWriteQueries, db sqlc.DBTX) *MemberRepository {
	return &MemberRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MemberRepository) FindCreditForUpdate(ctx context.Context, tx sqlc.DBTX, memberID uuid.UUID) (*member.Credit, error) {
	row, err := r.queries.GetMemberProfileForUpdate(ctx, tx, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock member profile", err)
	}

	credit, err := member.NewCredit(row.UserID, int(row.TotalSessions), int(row.UsedSessions))
	if err != nil {
		return nil, infra.WrapRepoErr("stored member credit out of range", err, infra.KindCheckViolated)
	}
	return credit, nil
}

func (r *MemberRepository) SaveCredit(ctx context.Context, tx sqlc.DBTX, credit *member.Credit, now time.Time) error {
	n, err := r.queries.UpdateMemberUsedSessions(ctx, tx, sqlc.UpdateMemberUsedSessionsParams{
		UserID:       credit.MemberID(),
		UsedSessions: int32(credit.Used()), // #nosec G115 -- bounded by total_sessions
		UpdatedAt:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update member credit", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("member profile not found", nil, infra.KindNotFound)
	}
	return nil
}
