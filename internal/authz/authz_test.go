package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcer_BuiltInPolicy(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	cases := []struct {
		role, resource, action string
		want                   bool
	}{
		{"ADMIN", "user", "create", true},
		{"STAFF", "user", "create", false},
		{"STAFF", "user", "list", true},
		{"CLIENT", "user", "list", false},
		{"CLIENT", "project", "read", true},
		{"STAFF", "project", "update", true},
		{"TECHNICIAN", "project", "update", false},
		{"TECHNICIAN", "equipment", "read", true},
		{"CLIENT", "equipment", "read", false},
		{"STAFF", "equipment_catalog", "create", false},
		{"CLIENT", "ticket", "delete", true},
		{"TECHNICIAN", "stats", "read", false},
		{"STAFF", "audit", "read", false},
		{"ADMIN", "audit", "read", true},
		{"UNKNOWN", "auth", "logout", true},
	}
	for _, tc := range cases {
		got, err := e.Allowed(tc.role, tc.resource, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}

func TestEnforcer_CustomPolicy(t *testing.T) {
	e, err := NewWithPolicy("p, STAFF, stats, read\n\n")
	require.NoError(t, err)

	ok, err := e.Allowed("STAFF", "stats", "read")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Allowed("ADMIN", "stats", "read")
	require.NoError(t, err)
	assert.False(t, ok)
}
