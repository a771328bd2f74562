package user

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleMember Role = "member"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleMember:
		return true
	default:
		return false
	}
}

// CanActAsTrainer reports whether the role may approve, reject or cancel on the trainer side.
func (r Role) CanActAsTrainer() bool {
	return r == RoleCoach || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
