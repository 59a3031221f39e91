package tools

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (m Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return d.DialAndSend(msg)
}

// SendPinCode delivers the 6-digit password reset code.
func (m Mailer) SendPinCode(to, code string) error {
	return m.Send(
		to,
		"Your PIN reset code",
		fmt.Sprintf("Your 6-digit PIN reset code is: %s", code),
	)
}
