package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-user/app/entity"
	"github.com/vibast-solutions/ms-go-user/config"
)

var (
	ErrEmailRegistered    = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")

	// ErrAuthUserMissing means a request carried valid claims for a user that
	// no longer exists. That is an internal inconsistency, not a user error.
	ErrAuthUserMissing = errors.New("authenticated user no longer exists")
)

type userDirectory interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, canonicalEmail string) (*entity.User, error)
	FindByID(ctx context.Context, id uint64) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

type countryValidator interface {
	Validate(identifier string) error
}

// RegisterInput is the whitelist of fields a client may set at registration.
// Anything else in the request body is ignored.
type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	DeviceID     string
	DeviceType   string
	Type         string
	MobileNumber string
	Country      string
}

type Credentials struct {
	Email    string
	Password string
}

type UpdatePasswordInput struct {
	Password    string
	NewPassword string
}

// ProfileUpdate and DeviceUpdate carry merge semantics: nil means the field
// is untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
}

type DeviceUpdate struct {
	DeviceID   *string
	DeviceType *string
}

// UserService runs the account workflows. Each one is a linear pipeline that
// stops at the first failing step and surfaces that error unchanged.
type UserService struct {
	users     userDirectory
	countries countryValidator
	codec     *TokenCodec
	cfg       *config.Config
}

func NewUserService(users userDirectory, countries countryValidator, codec *TokenCodec, cfg *config.Config) *UserService {
	return &UserService{
		users:     users,
		countries: countries,
		codec:     codec,
		cfg:       cfg,
	}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := s.countries.Validate(in.Country); err != nil {
		return nil, err
	}

	canonicalEmail := CanonicalizeEmail(in.Email)
	existing, err := s.users.FindByEmail(ctx, canonicalEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	verifyToken, err := generateOpaqueToken(s.cfg.VerifyTokenLength)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Email:              in.Email,
		CanonicalEmail:     canonicalEmail,
		PasswordHash:       hash,
		FirstName:          nullString(in.FirstName),
		LastName:           nullString(in.LastName),
		Type:               in.Type,
		DeviceID:           nullString(in.DeviceID),
		DeviceType:         nullString(in.DeviceType),
		MobileNumber:       nullString(in.MobileNumber),
		Country:            nullString(in.Country),
		VerifyAccountToken: sql.NullString{String: verifyToken, Valid: true},
		VerifyAccountTokenExpiry: sql.NullTime{
			Time:  now.Add(s.cfg.VerifyTokenTTL),
			Valid: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Two concurrent registrations can both pass the lookup above; the
	// unique constraint on canonical_email decides the winner and the loser
	// sees repository.ErrDuplicateEmail.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	user, err := s.users.FindByEmail(ctx, CanonicalizeEmail(creds.Email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !user.Verified() {
		return "", ErrAccountNotVerified
	}

	ok, err := VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	return s.codec.Issue(user.ID, user.Type)
}

// ForgotPassword generates and persists a reset token; delivering it to the
// user is someone else's job.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, CanonicalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	resetToken, err := generateOpaqueToken(s.cfg.VerifyTokenLength)
	if err != nil {
		return err
	}

	user.ResetPasswordToken = sql.NullString{String: resetToken, Valid: true}
	user.ResetPasswordTokenExpiry = sql.NullTime{
		Time:  time.Now().Add(s.cfg.ResetTokenTTL),
		Valid: true,
	}

	return s.users.Update(ctx, user)
}

func (s *UserService) UpdatePassword(ctx context.Context, userID uint64, in UpdatePasswordInput) (*entity.User, error) {
	user, err := s.loadAuthUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ok, err := VerifyPassword(in.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	hash, err := HashPassword(in.NewPassword)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, in ProfileUpdate) (*entity.User, error) {
	user, err := s.loadAuthUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = nullString(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = nullString(*in.LastName)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateDevice(ctx context.Context, userID uint64, in DeviceUpdate) (*entity.User, error) {
	user, err := s.loadAuthUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.DeviceID != nil {
		user.DeviceID = nullString(*in.DeviceID)
	}
	if in.DeviceType != nil {
		user.DeviceType = nullString(*in.DeviceType)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Me(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// loadAuthUser loads the user behind validated claims. A miss here should
// never happen; the caller treats it as a server-side bug.
func (s *UserService) loadAuthUser(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAuthUserMissing
	}
	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
