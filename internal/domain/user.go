package domain

import "strings"

type Role string

const (
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "USER"
)

// ParseRole maps an external role label to the internal role. The mapping is
// total: anything that is not a librarian label is an ordinary member.
func ParseRole(label string) Role {
	if strings.EqualFold(label, "librarian") || strings.EqualFold(label, string(RoleLibrarian)) {
		return RoleLibrarian
	}
	return RoleMember
}

type User struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Email        string `json:"email,omitempty"`
}
