package model

// User represents a registered account row
type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"` // Do not expose password hash in JSON responses
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Age          int     `json:"age"`
}

// PublicUser is the authenticated identity exposed to callers
type PublicUser struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
}

// Public maps a stored user row to its authenticated identity
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}

// UpdateProfileRequest is a full replace of the editable profile fields.
// Username falls back to the caller's current one when omitted; FullName and
// Phone are written as given, including null.
type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	NewPassword *string `json:"new_password"`
}
