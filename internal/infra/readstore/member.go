package readstore

import (
	"context"

	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MemberReadQueries interface {
	GetMemberCredit(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetMemberCreditRow, error)
	GetMemberWithProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetMemberWithProfileRow, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      sqlc.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db sqlc.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberReadStore) FindCredit(ctx context.Context, memberID uuid.UUID) (*queries.MemberCreditView, error) {
	row, err := r.queries.GetMemberCredit(ctx, r.db, memberID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get member credit", err)
	}

	return &queries.MemberCreditView{
		MemberID:       row.UserID,
		TotalSessions:  row.TotalSessions,
		UsedSessions:   row.UsedSessions,
		ConfirmedCount: row.ConfirmedCount,
	}, nil
}

// FindProfile returns the member joined with their profile. NOT_FOUND when the user has no profile.
func (r *MemberReadStore) FindProfile(ctx context.Context, id uuid.UUID) (sqlc.GetMemberWithProfileRow, error) {
	row, err := r.queries.GetMemberWithProfile(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.GetMemberWithProfileRow{}, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return sqlc.GetMemberWithProfileRow{}, infra.WrapRepoErr("failed to get member", err)
	}
	return row, nil
}
