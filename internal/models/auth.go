package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RoleAdmin grants access to facility management.
const RoleAdmin = "admin"

// User is an administrator account. Public visitors never log in.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID  `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email        string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash string     `bun:"password_hash" json:"-"`
	TokenVersion int        `bun:"token_version,notnull,default:0" json:"-"`
	Roles        []string   `bun:"roles,type:text[],array" json:"roles"`
	Provider     string     `bun:"provider,notnull,default:'local'" json:"provider"`
	Name         string     `bun:"name" json:"name"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	LastLoginAt  *time.Time `bun:"last_login_at" json:"lastLoginAt,omitempty"`
}

// HasRole reports whether the user carries role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RefreshToken is a stored, hashed refresh token for one admin session.
type RefreshToken struct {
	bun.BaseModel `bun:"table:refresh_tokens,alias:rt"`

	ID         uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `bun:"user_id,type:uuid,notnull" json:"userId"`
	JTI        string    `bun:"jti,notnull" json:"jti"`
	TokenHash  string    `bun:"token_hash,notnull" json:"-"`
	DeviceInfo *string   `bun:"device_info" json:"deviceInfo,omitempty"`
	Revoked    bool      `bun:"revoked,notnull,default:false" json:"revoked"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	ExpiresAt  time.Time `bun:"expires_at,notnull" json:"expiresAt"`
}
