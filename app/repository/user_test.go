package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-user/app/entity"
	"github.com/vibast-solutions/ms-go-user/app/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

const (
	insertUserQuery    = `(?s)INSERT INTO users \(email, canonical_email, password_hash, first_name, last_name, type,\s+device_id, device_type, mobile_number, country,\s+verify_account_token, verify_account_token_expiry, created_at, updated_at\)\s+VALUES \(\?, \?, \?, \?, \?, \?, \?, \?, \?, \?, \?, \?, \?, \?\)`
	findByEmailQuery   = `(?s)SELECT id, email, canonical_email, password_hash, first_name, last_name, type,\s+device_id, device_type, mobile_number, country,\s+verify_account_token, verify_account_token_expiry,\s+reset_password_token, reset_password_token_expiry, created_at, updated_at\s+FROM users WHERE canonical_email = \?`
	findByIDQuery      = `(?s)SELECT id, email, canonical_email, password_hash, first_name, last_name, type,\s+device_id, device_type, mobile_number, country,\s+verify_account_token, verify_account_token_expiry,\s+reset_password_token, reset_password_token_expiry, created_at, updated_at\s+FROM users WHERE id = \?`
	updateUserQuery    = `(?s)UPDATE users SET\s+email = \?,\s+canonical_email = \?,\s+password_hash = \?,\s+first_name = \?,\s+last_name = \?,\s+type = \?,\s+device_id = \?,\s+device_type = \?,\s+mobile_number = \?,\s+country = \?,\s+verify_account_token = \?,\s+verify_account_token_expiry = \?,\s+reset_password_token = \?,\s+reset_password_token_expiry = \?,\s+updated_at = \?\s+WHERE id = \?`
	insertAccessToken  = `(?s)INSERT INTO access_tokens \(user_id, access_token, refresh_token, social_network, created_at\)\s+VALUES \(\?, \?, \?, \?, \?\)`
	findAccessByUserID = `(?s)SELECT id, user_id, access_token, refresh_token, social_network, created_at\s+FROM access_tokens WHERE user_id = \? ORDER BY id`
)

var userColumns = []string{
	"id",
	"email",
	"canonical_email",
	"password_hash",
	"first_name",
	"last_name",
	"type",
	"device_id",
	"device_type",
	"mobile_number",
	"country",
	"verify_account_token",
	"verify_account_token_expiry",
	"reset_password_token",
	"reset_password_token_expiry",
	"created_at",
	"updated_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { _ = db.Close() }
}

func testUser(now time.Time) *entity.User {
	return &entity.User{
		Email:          "User@Example.com",
		CanonicalEmail: "user@example.com",
		PasswordHash:   "hash",
		FirstName:      sql.NullString{String: "Jane", Valid: true},
		LastName:       sql.NullString{String: "Doe", Valid: true},
		Type:           entity.UserTypeIndividual,
		Country:        sql.NullString{String: "US", Valid: true},
		VerifyAccountToken: sql.NullString{
			String: "verify-token",
			Valid:  true,
		},
		VerifyAccountTokenExpiry: sql.NullTime{
			Time:  now.Add(24 * time.Hour),
			Valid: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewUserRepository(db)
	user := testUser(time.Now())

	mock.ExpectExec(insertUserQuery).
		WillReturnResult(sqlmock.NewResult(7, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("expected assigned id 7, got %d", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewUserRepository(db)
	user := testUser(time.Now())

	mock.ExpectExec(insertUserQuery).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := repo.Create(context.Background(), user)
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(findByEmailQuery).
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			7, "User@Example.com", "user@example.com", "hash",
			"Jane", "Doe", entity.UserTypeIndividual,
			nil, nil, nil, "US",
			"verify-token", now.Add(24*time.Hour),
			nil, nil, now, now,
		))

	user, err := repo.FindByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID != 7 || user.Email != "User@Example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Verified() {
		t.Error("expected user with verify token to be unverified")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryFindByEmailNoRows(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(findByEmailQuery).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByEmail(context.Background(), "missing@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestUserRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(findByIDQuery).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			7, "user@example.com", "user@example.com", "hash",
			nil, nil, entity.UserTypeBusinessEmployee,
			nil, nil, nil, nil,
			nil, nil, nil, nil, now, now,
		))

	user, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.Type != entity.UserTypeBusinessEmployee {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !user.Verified() {
		t.Error("expected user without verify token to be verified")
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewUserRepository(db)
	user := testUser(time.Now())
	user.ID = 7

	mock.ExpectExec(updateUserQuery).
		WillReturnResult(sqlmock.NewResult(0, 1))

	before := user.UpdatedAt
	if err := repo.Update(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !user.UpdatedAt.After(before) {
		t.Error("expected UpdatedAt to be refreshed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
