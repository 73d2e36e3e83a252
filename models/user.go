package models

// VendorRole links a user to the vendor they can manage on the dashboard.
type VendorRole struct {
	VendorID   uint   `json:"vendor_id"`
	VendorName string `json:"vendor_name"`
	VendorSlug string `json:"vendor_slug,omitempty"`
	Role       string `json:"role,omitempty"`
}

type UserProfile struct {
	ID         string      `json:"id"`
	Phone      string      `json:"phone"`
	FullName   string      `json:"full_name,omitempty"`
	VendorRole *VendorRole `json:"vendor_role,omitempty"`
}

// IsVendorStaff reports whether the profile carries an active vendor role.
func (u *UserProfile) IsVendorStaff() bool {
	return u != nil && u.VendorRole != nil && u.VendorRole.VendorID != 0
}

// AuthPayload is the credential bundle issued by the backend, either on OTP
// verification or as part of a guest-to-account upgrade during checkout.
type AuthPayload struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserProfile `json:"user"`
}

// SessionInfo is the backend's answer to a session bootstrap call.
type SessionInfo struct {
	Authenticated bool                `json:"authenticated"`
	User          *UserProfile        `json:"user,omitempty"`
	ActiveOrder   *ActiveOrderSummary `json:"active_order,omitempty"`
}
