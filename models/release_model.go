package models

import (
	"time"

	"gorm.io/gorm"
)

// Release adalah berita yang ditulis dari sebuah press release.
// Status true berarti sudah disetujui admin dan tampil di halaman tamu.
type Release struct {
	gorm.Model
	Judul            string        `json:"judul" gorm:"not null"`
	IsiBerita        string        `json:"isi_berita" gorm:"column:isi_berita;not null"`
	TanggalPublikasi time.Time     `json:"tanggal_publikasi" gorm:"column:tanggal_publikasi"`
	PressReleaseID   *uint         `json:"press_release_id"`
	PressRelease     *PressRelease `json:"press_release,omitempty"`
	UserID           uint          `json:"user_id"`
	User             *User         `json:"user,omitempty"`
	Status           bool          `json:"status" gorm:"default:false"`
	Fotos            []FotoRelease `json:"fotos,omitempty" gorm:"foreignKey:ReleaseID"`
}

func (Release) TableName() string { return "release" }

type FotoRelease struct {
	gorm.Model
	ReleaseID uint    `json:"release_id"`
	Foto1     *string `json:"foto1"`
	Foto2     *string `json:"foto2"`
	Foto3     *string `json:"foto3"`
	Foto4     *string `json:"foto4"`
	Foto5     *string `json:"foto5"`
}

func (FotoRelease) TableName() string { return "foto_release" }
