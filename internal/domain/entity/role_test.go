package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleBlogger))
	assert.True(t, RoleBlogger.AtLeast(RoleBlogger))
	assert.False(t, RoleReader.AtLeast(RoleBlogger))

	// Unknown roles sit at level 0 and never satisfy a minimum.
	assert.False(t, Role("superuser").AtLeast(RoleReader))
	assert.True(t, RoleReader.AtLeast(Role("superuser")))
}

func TestRole_Can(t *testing.T) {
	assert.True(t, RoleReader.Can(CapReadPosts))
	assert.False(t, RoleReader.Can(CapCreatePosts))

	assert.True(t, RoleBlogger.Can(CapCreatePosts))
	assert.True(t, RoleBlogger.Can(CapEditOwnPost))
	assert.False(t, RoleBlogger.Can(CapEditAnyPost))
	assert.False(t, RoleBlogger.Can(CapManageUsers))

	assert.True(t, RoleAdmin.Can(CapEditAnyPost))
	assert.True(t, RoleAdmin.Can(CapManageUsers))

	// Unknown capabilities are always denied.
	assert.False(t, RoleAdmin.Can(Capability("launch_rockets")))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleReader.IsValid())
	assert.True(t, RoleBlogger.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("merchant").IsValid())
	assert.False(t, Role("").IsValid())
}
