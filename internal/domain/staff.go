package domain

import "time"

type StaffRole string

const (
	StaffRoleAdmin     StaffRole = "admin"
	StaffRoleCommittee StaffRole = "committee"
	StaffRoleTreasury  StaffRole = "treasury"
	StaffRoleChair     StaffRole = "chair"
)

// ValidStaffRole reports whether r is one of the four fixed roles.
func ValidStaffRole(r StaffRole) bool {
	switch r {
	case StaffRoleAdmin, StaffRoleCommittee, StaffRoleTreasury, StaffRoleChair:
		return true
	}
	return false
}

type Staff struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         StaffRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
