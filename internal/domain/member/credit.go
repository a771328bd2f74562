package member

import (
	"errors"
	"fmt"

	"fitcoach-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredit     = errors.New("used sessions must be within 0..total")
	ErrNoCreditToRelease = errors.New("no consumed session to release")
	ErrInvalidDelta      = errors.New("credit delta must be -1, 0 or 1")
)

// Credit is a member's session allowance. Used counts confirmed, non-cancelled appointments.
type Credit struct {
	memberID uuid.UUID
	total    int
	used     int
}

func NewCredit(memberID uuid.UUID, total, used int) (*Credit, error) {
	if total < 0 || used < 0 || used > total {
		return nil, fmt.Errorf("%w: used=%d total=%d", ErrInvalidCredit, used, total)
	}
	return &Credit{memberID: memberID, total: total, used: used}, nil
}

func (c *Credit) MemberID() uuid.UUID { return c.memberID }
func (c *Credit) Total() int          { return c.total }
func (c *Credit) Used() int           { return c.used }
func (c *Credit) Remaining() int      { return c.total - c.used }

func (c *Credit) Consume() error {
	if c.used >= c.total {
		return errs.ErrCreditExhausted
	}
	c.used++
	return nil
}

func (c *Credit) Release() error {
	if c.used <= 0 {
		return ErrNoCreditToRelease
	}
	c.used--
	return nil
}

// Apply performs the credit side of an appointment transition.
func (c *Credit) Apply(delta int) error {
	switch delta {
	case 0:
		return nil
	case 1:
		return c.Consume()
	case -1:
		return c.Release()
	default:
		return ErrInvalidDelta
	}
}

// InSync reports whether the stored counter matches the count of confirmed appointments.
func (c *Credit) InSync(confirmed int) bool {
	return c.used == confirmed
}
