package queries

import (
	"context"

	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound = errs.New("member not found")
	ErrCreditAccess   = errs.New("credit access denied")
)

type MemberQueries interface {
	// GetCredit reports the stored counter next to the number of confirmed appointments.
	GetCredit(ctx context.Context, actor shared.Actor, memberID uuid.UUID) (*MemberCreditView, error)
}

type MemberReadStore interface {
	FindCredit(ctx context.Context, memberID uuid.UUID) (*MemberCreditView, error)
}

type memberQueriesImpl struct {
	store MemberReadStore
}

func NewMemberQueries(store MemberReadStore) MemberQueries {
	return &memberQueriesImpl{store: store}
}

func (q *memberQueriesImpl) GetCredit(ctx context.Context, actor shared.Actor, memberID uuid.UUID) (*MemberCreditView, error) {
	// coaches look up credit before approving
	if actor.Role == user.RoleMember && actor.ID != memberID {
		return nil, ErrCreditAccess
	}

	view, err := q.store.FindCredit(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	view.RemainingSessions = view.TotalSessions - view.UsedSessions
	view.InSync = int64(view.UsedSessions) == view.ConfirmedCount
	return view, nil
}
