package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-user/app/entity"
)

type AccessTokenRepository struct {
	db *sql.DB
}

func NewAccessTokenRepository(db *sql.DB) *AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

func (r *AccessTokenRepository) Create(ctx context.Context, token *entity.AccessToken) error {
	query := `
		INSERT INTO access_tokens (user_id, access_token, refresh_token, social_network, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		token.UserID,
		token.AccessToken,
		token.RefreshToken,
		token.SocialNetwork,
		token.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	token.ID = uint64(id)
	return nil
}

func (r *AccessTokenRepository) FindByUserID(ctx context.Context, userID uint64) ([]*entity.AccessToken, error) {
	query := `
		SELECT id, user_id, access_token, refresh_token, social_network, created_at
		FROM access_tokens WHERE user_id = ? ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []*entity.AccessToken
	for rows.Next() {
		token := &entity.AccessToken{}
		if err := rows.Scan(
			&token.ID,
			&token.UserID,
			&token.AccessToken,
			&token.RefreshToken,
			&token.SocialNetwork,
			&token.CreatedAt,
		); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
