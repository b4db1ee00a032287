package models

import "time"

// UserLevel Model
type UserLevel struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"nama_level" gorm:"column:nama_level;not null"`
	Code        string    `json:"kode_level" gorm:"column:kode_level;uniqueIndex;not null"`
	Description string    `json:"keterangan" gorm:"column:keterangan"`
	IsActive    bool      `json:"status_aktif" gorm:"column:status_aktif;default:true"`
	Menus       []Menu    `json:"menus,omitempty" gorm:"many2many:menu_user_level;"`
	Users       []User    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (UserLevel) TableName() string { return "user_levels" }
