package http

import (
	"time"

	"github.com/vibast-solutions/ms-go-user/app/entity"
)

// UserResponse is the only shape a user record leaves the service in. The
// password hash and the verification/reset tokens never appear here.
type UserResponse struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	Type         string    `json:"type"`
	DeviceID     string    `json:"deviceId,omitempty"`
	DeviceType   string    `json:"deviceType,omitempty"`
	MobileNumber string    `json:"mobileNumber,omitempty"`
	Country      string    `json:"country,omitempty"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName.String,
		LastName:     user.LastName.String,
		Type:         user.Type,
		DeviceID:     user.DeviceID.String,
		DeviceType:   user.DeviceType.String,
		MobileNumber: user.MobileNumber.String,
		Country:      user.Country.String,
		Verified:     user.Verified(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
