package user

type Role string

const (
	RoleGuest        Role = "guest"
	RoleReceptionist Role = "receptionist"
	RoleAccountant   Role = "accountant"
	RoleManager      Role = "manager"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleReceptionist, RoleAccountant, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to hotel personnel.
func (r Role) IsStaff() bool {
	return r.IsValid() && r != RoleGuest
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
