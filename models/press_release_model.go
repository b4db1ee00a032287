package models

import "gorm.io/gorm"

// PressRelease menyimpan bahan berita 5W1H dari humas. Status true
// berarti sudah diangkat menjadi release.
type PressRelease struct {
	gorm.Model
	What           string             `json:"what" gorm:"not null"`
	Who            string             `json:"who" gorm:"not null"`
	When           string             `json:"when" gorm:"column:when;not null"`
	Where          string             `json:"where" gorm:"column:where;not null"`
	Why            string             `json:"why" gorm:"not null"`
	How            string             `json:"how" gorm:"not null"`
	PemberiKutipan string             `json:"pemberi_kutipan" gorm:"column:pemberi_kutipan"`
	IsiKutipan     string             `json:"isi_kutipan" gorm:"column:isi_kutipan"`
	UserID         uint               `json:"user_id"`
	User           *User              `json:"user,omitempty"`
	Status         bool               `json:"status" gorm:"default:false"`
	Fotos          []FotoPressRelease `json:"fotos,omitempty" gorm:"foreignKey:PressReleaseID"`
}

func (PressRelease) TableName() string { return "press_release" }

type FotoPressRelease struct {
	gorm.Model
	PressReleaseID uint    `json:"press_release_id"`
	Foto1          *string `json:"foto1"`
	Foto2          *string `json:"foto2"`
	Foto3          *string `json:"foto3"`
	Foto4          *string `json:"foto4"`
	Foto5          *string `json:"foto5"`
}

func (FotoPressRelease) TableName() string { return "foto_press_release" }
