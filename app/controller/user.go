package controller

import (
	"errors"
	"net/http"

	"github.com/vibast-solutions/ms-go-user/app/country"
	httpdto "github.com/vibast-solutions/ms-go-user/app/dto/http"
	"github.com/vibast-solutions/ms-go-user/app/repository"
	"github.com/vibast-solutions/ms-go-user/app/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

func (c *UserController) Register(ctx echo.Context) error {
	req, err := httpdto.NewRegisterRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind register request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.WithField("email", req.Email).Debug("Register validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logrus.WithField("email", req.Email).Info("Register request received")
	user, err := c.userService.Register(ctx.Request().Context(), service.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		DeviceID:     req.DeviceID,
		DeviceType:   req.DeviceType,
		Type:         req.Type,
		MobileNumber: req.MobileNumber,
		Country:      req.Country,
	})
	if err != nil {
		if errors.Is(err, country.ErrInvalidCountry) {
			logrus.WithField("email", req.Email).Warn("Register failed: invalid country")
			return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "Invalid country"})
		}
		if errors.Is(err, service.ErrEmailRegistered) {
			logrus.WithField("email", req.Email).Warn("Register failed: email already registered")
			return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "Email is already registered"})
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			logrus.WithField("email", req.Email).Warn("Register failed: lost create race on email")
			return ctx.JSON(http.StatusConflict, httpdto.ErrorResponse{Error: "Email is already registered"})
		}
		logrus.WithError(err).WithField("email", req.Email).Error("Register failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return ctx.JSON(http.StatusCreated, httpdto.NewUserResponse(user))
}

func (c *UserController) Login(ctx echo.Context) error {
	req, err := httpdto.NewLoginRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind login request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.WithField("email", req.Email).Debug("Login validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logrus.WithField("email", req.Email).Info("Login request received")
	token, err := c.userService.Authenticate(ctx.Request().Context(), service.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			logrus.WithField("email", req.Email).Warn("Login failed: unknown email")
			return ctx.JSON(http.StatusNotFound, httpdto.ErrorResponse{Error: "User not found for given email address"})
		}
		if errors.Is(err, service.ErrAccountNotVerified) {
			logrus.WithField("email", req.Email).Warn("Login failed: account not verified")
			return ctx.JSON(http.StatusForbidden, httpdto.ErrorResponse{Error: "Kindly verify the account first, then proceed for login"})
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			logrus.WithField("email", req.Email).Warn("Login failed: invalid credentials")
			return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "Invalid username or password"})
		}
		logrus.WithError(err).WithField("email", req.Email).Error("Login failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	logrus.WithField("email", req.Email).Info("Login successful")
	return ctx.JSON(http.StatusOK, httpdto.LoginResponse{Token: token})
}

func (c *UserController) ForgotPassword(ctx echo.Context) error {
	req, err := httpdto.NewForgotPasswordRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind forgot password request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.Debug("Forgot password validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	logrus.WithField("email", req.Email).Info("Forgot password request received")
	if err = c.userService.ForgotPassword(ctx.Request().Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// same response as the success path, no account enumeration
			logrus.WithField("email", req.Email).Debug("Forgot password for unknown email")
			return ctx.JSON(http.StatusOK, httpdto.MessageResponse{
				Message: "if the email exists, a password reset has been initiated",
			})
		}
		logrus.WithError(err).WithField("email", req.Email).Error("Forgot password failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	logrus.WithField("email", req.Email).Info("Password reset token generated")
	return ctx.JSON(http.StatusOK, httpdto.MessageResponse{
		Message: "if the email exists, a password reset has been initiated",
	})
}

func (c *UserController) UpdatePassword(ctx echo.Context) error {
	req, err := httpdto.NewUpdatePasswordRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind update password request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.Debug("Update password validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	userID, ok := authUserID(ctx)
	if !ok {
		logrus.Warn("Update password failed: missing user_id in context")
		return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
	}

	logrus.WithField("user_id", userID).Info("Update password request received")
	user, err := c.userService.UpdatePassword(ctx.Request().Context(), userID, service.UpdatePasswordInput{
		Password:    req.Password,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			logrus.WithField("user_id", userID).Warn("Update password failed: current password mismatch")
			return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "Invalid password"})
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Update password failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	logrus.WithField("user_id", userID).Info("Password updated")
	return ctx.JSON(http.StatusOK, httpdto.NewUserResponse(user))
}

func (c *UserController) UpdateProfile(ctx echo.Context) error {
	req, err := httpdto.NewUpdateProfileRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind update profile request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.Debug("Update profile validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	userID, ok := authUserID(ctx)
	if !ok {
		logrus.Warn("Update profile failed: missing user_id in context")
		return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
	}

	logrus.WithField("user_id", userID).Info("Update profile request received")
	user, err := c.userService.UpdateProfile(ctx.Request().Context(), userID, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Update profile failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	logrus.WithField("user_id", userID).Info("Profile updated")
	return ctx.JSON(http.StatusOK, httpdto.NewUserResponse(user))
}

func (c *UserController) UpdateDevice(ctx echo.Context) error {
	req, err := httpdto.NewUpdateDeviceRequestFromContext(ctx)
	if err != nil {
		logrus.WithError(err).Debug("Failed to bind update device request")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "invalid request body"})
	}

	if err = req.Validate(); err != nil {
		logrus.Debug("Update device validation failed")
		return ctx.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: err.Error()})
	}

	userID, ok := authUserID(ctx)
	if !ok {
		logrus.Warn("Update device failed: missing user_id in context")
		return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
	}

	logrus.WithField("user_id", userID).Info("Update device request received")
	user, err := c.userService.UpdateDevice(ctx.Request().Context(), userID, service.DeviceUpdate{
		DeviceID:   req.DeviceID,
		DeviceType: req.DeviceType,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Update device failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	logrus.WithField("user_id", userID).Info("Device updated")
	return ctx.JSON(http.StatusOK, httpdto.NewUserResponse(user))
}

func (c *UserController) Me(ctx echo.Context) error {
	userID, ok := authUserID(ctx)
	if !ok {
		logrus.Warn("Me failed: missing user_id in context")
		return ctx.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
	}

	user, err := c.userService.Me(ctx.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			logrus.WithField("user_id", userID).Warn("Me failed: user not found")
			return ctx.JSON(http.StatusNotFound, httpdto.ErrorResponse{Error: "user not found"})
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Me failed")
		return ctx.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "internal server error"})
	}

	return ctx.JSON(http.StatusOK, httpdto.NewUserResponse(user))
}

func authUserID(ctx echo.Context) (uint64, bool) {
	userID, ok := ctx.Get("user_id").(uint64)
	return userID, ok
}
