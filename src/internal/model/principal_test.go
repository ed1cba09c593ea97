package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAliases(t *testing.T) {
	for _, role := range []string{"admin", "owner", "superadmin", "queen"} {
		p := Principal{Role: role}
		assert.True(t, p.IsAdmin(), role)
		assert.True(t, p.IsManager(), role)
		assert.True(t, p.CanTransact(), role)
	}
}

func TestManagerIsNotAdmin(t *testing.T) {
	p := Principal{Role: "manager"}
	assert.False(t, p.IsAdmin())
	assert.True(t, p.IsManager())
	assert.True(t, p.CanTransact())
}

func TestEmployeeOnlyTransacts(t *testing.T) {
	p := Principal{Role: "employee"}
	assert.False(t, p.IsAdmin())
	assert.False(t, p.IsManager())
	assert.True(t, p.CanTransact())
}

func TestUnknownRoleHasNoAccess(t *testing.T) {
	p := Principal{Role: "guest"}
	assert.False(t, p.IsAdmin())
	assert.False(t, p.IsManager())
	assert.False(t, p.CanTransact())
}
