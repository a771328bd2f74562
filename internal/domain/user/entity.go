package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account as seen by booking. Accounts are provisioned elsewhere.
type User struct {
	id        uuid.UUID
	email     Email
	name      string
	role      Role
	isActive  bool
	createdAt time.Time
}

func NewUser(email Email, name string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:       uuid.New(),
		email:    email,
		name:     name,
		role:     role,
		isActive: true,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, name string, role Role, isActive bool, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) IsMember() bool { return u.role == RoleMember }
