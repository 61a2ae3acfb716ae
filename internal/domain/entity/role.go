// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the privilege tier a user holds in the system.
type Role string

const (
	// RoleReader indicates a regular reader account.
	RoleReader Role = "reader"
	// RoleBlogger indicates an account allowed to author posts.
	RoleBlogger Role = "blogger"
	// RoleAdmin indicates a fully privileged administrator account.
	RoleAdmin Role = "admin"
)

// roleHierarchy maps each role to its privilege level. Roles are totally
// ordered: reader < blogger < admin.
var roleHierarchy = map[Role]int{
	RoleReader:  1,
	RoleBlogger: 2,
	RoleAdmin:   3,
}

// Capability names an action a role may be allowed to perform.
type Capability string

const (
	CapReadPosts     Capability = "read_posts"
	CapCreatePosts   Capability = "create_posts"
	CapEditOwnPost   Capability = "edit_own_post"
	CapEditAnyPost   Capability = "edit_any_post"
	CapDeleteOwnPost Capability = "delete_own_post"
	CapDeleteAnyPost Capability = "delete_any_post"
	CapManageUsers   Capability = "manage_users"
)

// capabilityRoles is the static permission table mapping each capability to
// the set of roles allowed to perform it.
var capabilityRoles = map[Capability][]Role{
	CapReadPosts:     {RoleReader, RoleBlogger, RoleAdmin},
	CapCreatePosts:   {RoleBlogger, RoleAdmin},
	CapEditOwnPost:   {RoleBlogger, RoleAdmin},
	CapEditAnyPost:   {RoleAdmin},
	CapDeleteOwnPost: {RoleBlogger, RoleAdmin},
	CapDeleteAnyPost: {RoleAdmin},
	CapManageUsers:   {RoleAdmin},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleReader, RoleBlogger, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level returns the privilege level of the role. Unknown roles map to 0 so
// they never satisfy any minimum-role check; this fallback is deliberate
// policy, not an accident.
func (r Role) Level() int {
	return roleHierarchy[r]
}

// AtLeast reports whether the role's privilege level is greater than or
// equal to min's.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// Can reports whether the role may perform the named capability.
// Unknown capabilities are always denied.
func (r Role) Can(capability Capability) bool {
	return slices.Contains(capabilityRoles[capability], r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for message formatting.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
