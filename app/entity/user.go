package entity

import (
	"database/sql"
	"time"
)

const (
	UserTypeIndividual       = "INDIVIDUAL"
	UserTypeBusinessEmployee = "BUSINESS_EMPLOYEE"

	DeviceTypeAndroid = "ANDROID"
	DeviceTypeIOS     = "IOS"
)

type User struct {
	ID                       uint64
	Email                    string
	CanonicalEmail           string
	PasswordHash             string
	FirstName                sql.NullString
	LastName                 sql.NullString
	Type                     string
	DeviceID                 sql.NullString
	DeviceType               sql.NullString
	MobileNumber             sql.NullString
	Country                  sql.NullString
	VerifyAccountToken       sql.NullString
	VerifyAccountTokenExpiry sql.NullTime
	ResetPasswordToken       sql.NullString
	ResetPasswordTokenExpiry sql.NullTime
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// Verified reports whether the account has completed email verification.
// An outstanding verification token means login is still gated.
func (u *User) Verified() bool {
	return !u.VerifyAccountToken.Valid
}
