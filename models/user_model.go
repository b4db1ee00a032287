package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string     `json:"name" gorm:"not null"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Password    string     `json:"-"`
	UserLevelID *uint      `json:"user_level_id"`
	UserLevel   *UserLevel `json:"user_level,omitempty"`
}

// LoginLog mencatat setiap percobaan login, sukses maupun gagal.
type LoginLog struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        *uint      `json:"user_id"`
	SessionID     string     `json:"session_id"`
	Username      string     `json:"username"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	LoginStatus   string     `json:"login_status"`
	FailureReason *string    `json:"failure_reason"`
	CreatedAt     time.Time  `json:"created_at"`
}
