package appointment

import (
	"errors"
	"strings"
	"unicode/utf8"

	"fitcoach-booking/internal/domain/user"

	"github.com/google/uuid"
)

const MaxReasonLength = 500

var (
	ErrInvalidStatus   = errors.New("invalid appointment status")
	ErrReasonTooLong   = errors.New("reason exceeds maximum length")
	ErrInvalidSnapshot = errors.New("member snapshot requires id and name")
)

// Reason is an optional free-text explanation for a rejection or cancellation.
type Reason struct {
	value string
}

func NewReason(s string) (Reason, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxReasonLength {
		return Reason{}, ErrReasonTooLong
	}
	return Reason{value: s}, nil
}

func (r Reason) Value() string { return r.value }
func (r Reason) IsEmpty() bool { return r.value == "" }

func (r Reason) Ptr() *string {
	if r.IsEmpty() {
		return nil
	}
	v := r.value
	return &v
}

// MemberSnapshot is the member identity copied onto the appointment at claim time.
type MemberSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email user.Email
}

func (m MemberSnapshot) validate() error {
	if m.ID == uuid.Nil || strings.TrimSpace(m.Name) == "" {
		return ErrInvalidSnapshot
	}
	return nil
}
