package models

import "time"

// ConfigWa menyimpan kredensial gateway WhatsApp. Satu baris saja.
type ConfigWa struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	GatewayUrl    string    `json:"wa_gateway_url" gorm:"column:wa_gateway_url"`
	GatewaySecret string    `json:"wa_gateway_secret" gorm:"column:wa_gateway_secret"`
	SessionName   string    `json:"wa_session_name" gorm:"column:wa_session_name"`
	NomorWa       string    `json:"nomor_wa" gorm:"column:nomor_wa"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ConfigWa) TableName() string { return "config_wa" }
