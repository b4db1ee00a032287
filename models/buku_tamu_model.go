package models

import (
	"time"

	"portal-app/types"
)

// BukuTamu Model
type BukuTamu struct {
	ID            types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	NamaLengkap   string            `json:"nama_lengkap" gorm:"column:nama_lengkap;not null"`
	Instansi      string            `json:"instansi" gorm:"not null"`
	Tanggal       time.Time         `json:"tanggal"`
	NomorTelepon  string            `json:"nomor_telepon" gorm:"column:nomor_telepon"`
	BertemuDengan string            `json:"bertemu_dengan" gorm:"column:bertemu_dengan"`
	Keperluan     string            `json:"keperluan"`
	Status        bool              `json:"status" gorm:"default:false"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (BukuTamu) TableName() string { return "buku_tamu" }
