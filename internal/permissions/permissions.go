// internal/permissions/permissions.go
package permissions

import (
	"net/http"
)

// Identity carries the claims of an authenticated caller. A nil *Identity
// means the request carried no valid credentials.
type Identity struct {
	UserID     uint
	Username   string
	IsStaff    bool
	IsMerchant bool
}

// IsSafeMethod reports whether method never mutates state.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// IsAuthenticated reports whether identity represents a logged-in user.
func IsAuthenticated(identity *Identity) bool {
	return identity != nil
}

// IsAdminOrReadOnly allows safe methods for everyone and mutating methods
// only for authenticated staff users.
func IsAdminOrReadOnly(identity *Identity, method string) bool {
	if IsSafeMethod(method) {
		return true
	}
	return identity != nil && identity.IsStaff
}

// IsMerchant allows only authenticated users carrying the merchant flag.
func IsMerchant(identity *Identity) bool {
	return identity != nil && identity.IsMerchant
}
