package models

import (
	"time"

	"portal-app/types"
)

// Aset Model. Kode dicetak pada label QR dan dipakai endpoint lookup.
type Aset struct {
	ID               types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Kode             string            `json:"kode_aset" gorm:"column:kode_aset;uniqueIndex;not null"`
	Nama             string            `json:"nama_aset" gorm:"column:nama_aset;not null"`
	Spesifikasi      string            `json:"spesifikasi"`
	Pemilik          string            `json:"pemilik_aset" gorm:"column:pemilik_aset"`
	Kritikalitas     string            `json:"kritikalitas" gorm:"default:Sedang"`
	Lokasi           string            `json:"lokasi"`
	Label            string            `json:"label"`
	TanggalPerolehan *time.Time        `json:"tanggal_perolehan" gorm:"column:tanggal_perolehan"`
	UsiaAset         *int              `json:"usia_aset" gorm:"column:usia_aset"`
	Status           string            `json:"status" gorm:"default:Aktif"`
	MetodePemusnahan string            `json:"metode_pemusnahan" gorm:"column:metode_pemusnahan"`
	Keterangan       string            `json:"keterangan"`
	FotoAset         string            `json:"foto_aset" gorm:"column:foto_aset"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
