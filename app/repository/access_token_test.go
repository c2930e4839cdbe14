package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-user/app/entity"
	"github.com/vibast-solutions/ms-go-user/app/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

var accessTokenColumns = []string{
	"id",
	"user_id",
	"access_token",
	"refresh_token",
	"social_network",
	"created_at",
}

func TestAccessTokenRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewAccessTokenRepository(db)
	token := &entity.AccessToken{
		UserID:        7,
		AccessToken:   "social-access-token",
		RefreshToken:  sql.NullString{String: "social-refresh-token", Valid: true},
		SocialNetwork: "facebook",
		CreatedAt:     time.Now(),
	}

	mock.ExpectExec(insertAccessToken).
		WillReturnResult(sqlmock.NewResult(3, 1))

	if err := repo.Create(context.Background(), token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.ID != 3 {
		t.Errorf("expected assigned id 3, got %d", token.ID)
	}
}

func TestAccessTokenRepositoryFindByUserID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := repository.NewAccessTokenRepository(db)
	now := time.Now()

	mock.ExpectQuery(findAccessByUserID).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(accessTokenColumns).
			AddRow(1, 7, "token-a", nil, "facebook", now).
			AddRow(2, 7, "token-b", "refresh-b", "google", now))

	tokens, err := repo.FindByUserID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].SocialNetwork != "google" || !tokens[1].RefreshToken.Valid {
		t.Errorf("unexpected token: %+v", tokens[1])
	}
}
