package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-user/app/entity"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateEmail is returned when an insert or update trips the unique
// constraint on users.canonical_email. The constraint, not the application
// pre-check, is the source of truth for email uniqueness.
var ErrDuplicateEmail = errors.New("email is already registered")

const mysqlDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, canonical_email, password_hash, first_name, last_name, type,
	       device_id, device_type, mobile_number, country,
	       verify_account_token, verify_account_token_expiry,
	       reset_password_token, reset_password_token_expiry, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, canonical_email, password_hash, first_name, last_name, type,
			device_id, device_type, mobile_number, country,
			verify_account_token, verify_account_token_expiry, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.CanonicalEmail,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Type,
		user.DeviceID,
		user.DeviceType,
		user.MobileNumber,
		user.Country,
		user.VerifyAccountToken,
		user.VerifyAccountTokenExpiry,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint64(id)
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, canonicalEmail string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE canonical_email = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, canonicalEmail))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE id = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET
			email = ?,
			canonical_email = ?,
			password_hash = ?,
			first_name = ?,
			last_name = ?,
			type = ?,
			device_id = ?,
			device_type = ?,
			mobile_number = ?,
			country = ?,
			verify_account_token = ?,
			verify_account_token_expiry = ?,
			reset_password_token = ?,
			reset_password_token_expiry = ?,
			updated_at = ?
		WHERE id = ?
	`
	user.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.CanonicalEmail,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Type,
		user.DeviceID,
		user.DeviceType,
		user.MobileNumber,
		user.Country,
		user.VerifyAccountToken,
		user.VerifyAccountTokenExpiry,
		user.ResetPasswordToken,
		user.ResetPasswordTokenExpiry,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil && isDuplicateEntry(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) scanOne(row *sql.Row) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.CanonicalEmail,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Type,
		&user.DeviceID,
		&user.DeviceType,
		&user.MobileNumber,
		&user.Country,
		&user.VerifyAccountToken,
		&user.VerifyAccountTokenExpiry,
		&user.ResetPasswordToken,
		&user.ResetPasswordTokenExpiry,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
