package dbmysql

import (
	"time"
)

// User is the credential store record. Username and email carry unique
// indexes so a racing duplicate signup is rejected by the database itself,
// not just the application-level check.
type User struct {
	UserID       uint64    `gorm:"primaryKey;column:user_id;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;uniqueIndex:idx_users_username;size:64;not null" json:"username"`
	Email        string    `gorm:"column:email;uniqueIndex:idx_users_email;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Summary is the outward-facing view of a user. The password hash is never
// serialized anywhere.
type UserSummary struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.UserID, Username: u.Username, Email: u.Email}
}
