package entity

import (
	"database/sql"
	"time"
)

// AccessToken is a social-network credential attached to a user.
type AccessToken struct {
	ID            uint64
	UserID        uint64
	AccessToken   string
	RefreshToken  sql.NullString
	SocialNetwork string
	CreatedAt     time.Time
}
