// internal/permissions/permissions_test.go
package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminOrReadOnly(t *testing.T) {
	staff := &Identity{UserID: 1, Username: "admin", IsStaff: true}
	regular := &Identity{UserID: 2, Username: "buyer"}
	merchant := &Identity{UserID: 3, Username: "seller", IsMerchant: true}

	tests := []struct {
		name     string
		identity *Identity
		method   string
		want     bool
	}{
		{"anonymous GET", nil, http.MethodGet, true},
		{"anonymous HEAD", nil, http.MethodHead, true},
		{"anonymous OPTIONS", nil, http.MethodOptions, true},
		{"anonymous POST", nil, http.MethodPost, false},
		{"anonymous DELETE", nil, http.MethodDelete, false},
		{"regular user GET", regular, http.MethodGet, true},
		{"regular user POST", regular, http.MethodPost, false},
		{"regular user PUT", regular, http.MethodPut, false},
		{"merchant POST", merchant, http.MethodPost, false},
		{"staff GET", staff, http.MethodGet, true},
		{"staff POST", staff, http.MethodPost, true},
		{"staff PATCH", staff, http.MethodPatch, true},
		{"staff DELETE", staff, http.MethodDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdminOrReadOnly(tt.identity, tt.method))
		})
	}
}

func TestIsMerchant(t *testing.T) {
	assert.False(t, IsMerchant(nil))
	assert.False(t, IsMerchant(&Identity{UserID: 1, Username: "buyer"}))
	assert.False(t, IsMerchant(&Identity{UserID: 2, Username: "admin", IsStaff: true}))
	assert.True(t, IsMerchant(&Identity{UserID: 3, Username: "seller", IsMerchant: true}))
}

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, IsAuthenticated(nil))
	assert.True(t, IsAuthenticated(&Identity{UserID: 1}))
}
