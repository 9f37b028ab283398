package dbmysql

import (
	"time"
)

type User struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username     string     `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	Email        string     `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;size:255;not null" json:"-"`
	DisplayName  string     `gorm:"column:display_name;size:100;not null" json:"display_name"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
