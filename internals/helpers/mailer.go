package helper

import (
	"log"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"realestate_backend/internals/configs"
)

// SendMail kirim email via SMTP relay. Fire-and-forget: error cuma dicatat,
// tidak pernah menggagalkan request utama.
func SendMail(to, subject, textBody, htmlBody string) {
	if configs.SMTPHost == "" {
		log.Println("⚠️ SMTP belum dikonfigurasi, skip kirim email ke", to)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", configs.MailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if textBody != "" {
		m.SetBody("text/plain", textBody)
	}
	if htmlBody != "" {
		if textBody != "" {
			m.AddAlternative("text/html", htmlBody)
		} else {
			m.SetBody("text/html", htmlBody)
		}
	}

	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil || port <= 0 {
		port = 587
	}

	go func() {
		d := gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPassword)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("[WARN] gagal kirim email ke %s: %v", to, err)
		}
	}()
}
