package services

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"bloghub/internal/config"
)

// EmailService sends transactional mail. Delivery failures are logged
// and swallowed: registration must not fail because SMTP is down, the
// user can always ask for the code again.
type EmailService struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *EmailService) SendConfirmation(to, code string) {
	link := fmt.Sprintf("%s/confirm-email?code=%s", s.cfg.PublicBaseURL, code)
	body := fmt.Sprintf(
		"<h1>Thanks for your registration</h1><p>To finish registration please follow the link below:<br><a href=%q>complete registration</a></p>",
		link)
	s.send(to, "Confirm your registration", body)
}

func (s *EmailService) SendPasswordRecovery(to, code string) {
	link := fmt.Sprintf("%s/password-recovery?recoveryCode=%s", s.cfg.PublicBaseURL, code)
	body := fmt.Sprintf(
		"<h1>Password recovery</h1><p>To finish password recovery please follow the link below:<br><a href=%q>recovery password</a></p>",
		link)
	s.send(to, "Password recovery", body)
}

func (s *EmailService) send(to, subject, htmlBody string) {
	if s.cfg.SMTPUser == "" {
		slog.Warn("smtp not configured, skipping email", "to", to, "subject", subject)
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.SMTPFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if err := s.dialer.DialAndSend(msg); err != nil {
		slog.Error("failed to send email", "to", to, "subject", subject, "error", err.Error())
	}
}
