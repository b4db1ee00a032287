package providers

import (
	"portal-app/config"

	"gopkg.in/gomail.v2"
)

// SendNewsroomMail mengirim notifikasi ke alamat redaksi. Kalau SMTP
// tidak dikonfigurasi, notifikasi dianggap mati dan tidak error.
func SendNewsroomMail(subject, body string) error {
	if config.SMTPHost == "" || config.NewsroomMail == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.NewsroomMail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
