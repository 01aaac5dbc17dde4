package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)

	for _, endpoint := range data.Endpoints {
		if !endpoint.Skip {
			assert.NotEmpty(t, endpoint.Permissions, "%s %s has no roles", endpoint.Method, endpoint.Path)
		}
	}
}

func TestFindPermissions(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, skip: true},
		{name: "collection pattern with trailing slash", path: "/v1/bookings/", method: http.MethodGet, roles: []string{"superadmin", "admin", "sale"}},
		{name: "nested child route", path: "/v1/trip-check-ins/{id}/details/{childID}", method: http.MethodPatch, roles: []string{"superadmin", "admin", "sale", "guide"}},
		{name: "only superadmin deletes users", path: "/v1/users/{id}", method: http.MethodDelete, roles: []string{"superadmin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, got.Skip)
			assert.Equal(t, tt.roles, got.Permissions)
		})
	}

	assert.Empty(t, data.FindPermissions("/v1/unknown", http.MethodGet).Path)
}
