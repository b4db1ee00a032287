package models

import "time"

// Menu adalah node sidebar. Node tanpa route dan url hanya menjadi
// header grup untuk children-nya.
type Menu struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Name       string      `json:"nama_menu" gorm:"column:nama_menu;not null"`
	Icon       *string     `json:"ikon" gorm:"column:ikon"`
	Route      *string     `json:"route" gorm:"column:route"`
	Url        *string     `json:"url" gorm:"column:url"`
	ParentID   *uint       `json:"parent_id" gorm:"column:parent_id"`
	Parent     *Menu       `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Children   []Menu      `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Urutan     int         `json:"urutan" gorm:"column:urutan;not null"`
	IsActive   bool        `json:"status_aktif" gorm:"column:status_aktif;default:true"`
	UserLevels []UserLevel `json:"user_levels,omitempty" gorm:"many2many:menu_user_level;"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (Menu) TableName() string { return "menus" }
