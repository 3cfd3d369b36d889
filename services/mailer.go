package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// DispatchMailer notifies a client that units were dispatched under an
// outbound shipment. A nil mailer disables notifications.
type DispatchMailer interface {
	SendDispatchNotice(to, clientName, outboundNo string, serials []string) error
}

// SMTPMailer sends dispatch notices through a plain SMTP account.
type SMTPMailer struct {
	host   string
	port   int
	user   string
	pass   string
	sender string
}

func NewSMTPMailer(host string, port int, user, pass, sender string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, sender: sender}
}

func (m *SMTPMailer) SendDispatchNotice(to, clientName, outboundNo string, serials []string) error {
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>The following serial numbers were dispatched under outbound %s:</p><p>%s</p>",
		clientName, outboundNo, strings.Join(serials, "<br>"))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Dispatch notice "+outboundNo)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}
