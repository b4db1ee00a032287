package providers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portal-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// WhatsAppGateway membungkus gateway WA eksternal. Kredensial diambil
// dari baris config_wa; semantik pengiriman sepenuhnya urusan gateway.
type WhatsAppGateway struct {
	baseUrl string
	token   string
	session string
	nomorWa string
}

func NewWhatsAppGateway(db *gorm.DB) (*WhatsAppGateway, error) {
	var cfg models.ConfigWa
	if err := db.First(&cfg).Error; err != nil {
		return nil, fmt.Errorf("konfigurasi WhatsApp tidak ditemukan: %w", err)
	}

	g := &WhatsAppGateway{
		baseUrl: strings.TrimRight(cfg.GatewayUrl, "/"),
		token:   cfg.GatewaySecret,
		session: cfg.SessionName,
		nomorWa: cfg.NomorWa,
	}

	var missing []string
	if g.baseUrl == "" {
		missing = append(missing, "wa_gateway_url")
	}
	if g.token == "" {
		missing = append(missing, "wa_gateway_secret")
	}
	if g.session == "" {
		missing = append(missing, "wa_session_name")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config WhatsApp belum lengkap, field kosong: %s", strings.Join(missing, ", "))
	}

	return g, nil
}

// NotifyNumber adalah nomor tujuan notifikasi internal.
func (g *WhatsAppGateway) NotifyNumber() string { return g.nomorWa }

func (g *WhatsAppGateway) SendText(to, message string) error {
	payload := fiber.Map{
		"session": g.session,
		"to":      digitsOnly(to),
		"text":    message,
	}

	agent := fiber.Post(g.baseUrl + "/message/send-text")
	agent.Timeout(15 * time.Second)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+g.token)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.JSON(payload)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("WhatsApp gateway tidak bisa dihubungi: %w", errs[0])
	}
	if code >= fiber.StatusBadRequest {
		return fmt.Errorf("WhatsApp gateway error (%d): %s", code, body)
	}

	var decoded struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("respons gateway tidak valid: %s", body)
	}
	if !decoded.Success && decoded.Message == "" {
		return fmt.Errorf("gateway tidak mengembalikan status sukses: %s", body)
	}
	return nil
}

// SendToGroup mengirim ke group id gateway (format "xxx@g.us").
func (g *WhatsAppGateway) SendToGroup(groupID, message string) error {
	payload := fiber.Map{
		"session": g.session,
		"to":      groupID,
		"text":    message,
	}

	agent := fiber.Post(g.baseUrl + "/message/send-text")
	agent.Timeout(15 * time.Second)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+g.token)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.JSON(payload)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("WhatsApp gateway tidak bisa dihubungi: %w", errs[0])
	}
	if code >= fiber.StatusBadRequest {
		return fmt.Errorf("WhatsApp gateway error (%d): %s", code, body)
	}
	return nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
