package models

// Admin represents an administrator record
type Admin struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	CreatedAt   string `json:"created_at" validate:"required"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateAdminRequest is the payload for the admin-management form
type CreateAdminRequest struct {
	Name        string `json:"name" binding:"required" validate:"required"`
	Email       string `json:"email" binding:"required,email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required" validate:"required"`
}

// AdminPatch carries a partial admin update
type AdminPatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// AdminLoginRequest looks up an admin by phone number
type AdminLoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required" validate:"required"`
}

// DeleteResponse acknowledges a terminal delete. There is no soft delete
// and no undo.
type DeleteResponse struct {
	Success bool `json:"success"`
}
