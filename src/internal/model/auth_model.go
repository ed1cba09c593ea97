package model

import "time"

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Role      string `json:"role" validate:"required,oneof=employee manager admin"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	BranchID  *int64 `json:"branch_id"`
}

type RegisterResponse struct {
	Username string `json:"username"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required,max=100"`
	Password        string `json:"password" validate:"required,max=100"`
	DeviceInfo      string `json:"device_info"`
	IPAddress       string `json:"ip_address"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	BranchID  *int64 `json:"branch_id"`
}

type ProfileResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	BranchName string    `json:"branch_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=100"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=100"`
}
