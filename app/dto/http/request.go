package http

import (
	"errors"
	"strings"

	"github.com/vibast-solutions/ms-go-user/app/entity"

	"github.com/labstack/echo/v4"
)

type RegisterRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	DeviceID     string `json:"deviceId"`
	DeviceType   string `json:"deviceType"`
	Type         string `json:"type"`
	MobileNumber string `json:"mobileNumber"`
	Country      string `json:"country"`
}

func NewRegisterRequestFromContext(ctx echo.Context) (*RegisterRequest, error) {
	var body RegisterRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Password) == "" {
		return errors.New("email and password are required")
	}
	if !validUserType(r.Type) {
		return errors.New("type must be INDIVIDUAL or BUSINESS_EMPLOYEE")
	}
	if r.DeviceType != "" && !validDeviceType(r.DeviceType) {
		return errors.New("deviceType must be ANDROID or IOS")
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewLoginRequestFromContext(ctx echo.Context) (*LoginRequest, error) {
	var body LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Password) == "" {
		return errors.New("email and password are required")
	}

	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func NewForgotPasswordRequestFromContext(ctx echo.Context) (*ForgotPasswordRequest, error) {
	var body ForgotPasswordRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *ForgotPasswordRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}

	return nil
}

type UpdatePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

func NewUpdatePasswordRequestFromContext(ctx echo.Context) (*UpdatePasswordRequest, error) {
	var body UpdatePasswordRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *UpdatePasswordRequest) Validate() error {
	if strings.TrimSpace(r.Password) == "" || strings.TrimSpace(r.NewPassword) == "" {
		return errors.New("password and newPassword are required")
	}

	return nil
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func NewUpdateProfileRequestFromContext(ctx echo.Context) (*UpdateProfileRequest, error) {
	var body UpdateProfileRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *UpdateProfileRequest) Validate() error {
	if r.FirstName == nil && r.LastName == nil {
		return errors.New("nothing to update")
	}

	return nil
}

type UpdateDeviceRequest struct {
	DeviceID   *string `json:"deviceId"`
	DeviceType *string `json:"deviceType"`
}

func NewUpdateDeviceRequestFromContext(ctx echo.Context) (*UpdateDeviceRequest, error) {
	var body UpdateDeviceRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (r *UpdateDeviceRequest) Validate() error {
	if r.DeviceID == nil && r.DeviceType == nil {
		return errors.New("nothing to update")
	}
	if r.DeviceType != nil && !validDeviceType(*r.DeviceType) {
		return errors.New("deviceType must be ANDROID or IOS")
	}

	return nil
}

func validUserType(t string) bool {
	return t == entity.UserTypeIndividual || t == entity.UserTypeBusinessEmployee
}

func validDeviceType(t string) bool {
	return t == entity.DeviceTypeAndroid || t == entity.DeviceTypeIOS
}
