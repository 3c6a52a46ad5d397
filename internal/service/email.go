package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService builds the SMTP mailer. With an empty host every send
// becomes a logged no-op, which keeps local development working without
// a mail server.
func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	if s.host == "" {
		logger.Info("smtp not configured, skipping email", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour registration has been received. The committee will review your account shortly; you will be notified by email once a decision is made.\n\nBest regards,\nPPM Nurul Hakim", name)
	return s.send(email, "Registration received", body)
}

func (s *emailService) SendAccountDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	if approved {
		body := fmt.Sprintf("Hello %s,\n\nYour account has been verified. You can now sign in and fill out your biodata form.\n\nBest regards,\nPPM Nurul Hakim", name)
		return s.send(email, "Account verified", body)
	}
	body := fmt.Sprintf("Hello %s,\n\nYour account was rejected.\n\nReason: %s\n\nYou can sign in, correct your details and resubmit.\n\nBest regards,\nPPM Nurul Hakim", name, reason)
	return s.send(email, "Account rejected", body)
}

func (s *emailService) SendBiodataDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	if approved {
		body := fmt.Sprintf("Hello %s,\n\nYour biodata has been verified. The next step is submitting your admission payment.\n\nBest regards,\nPPM Nurul Hakim", name)
		return s.send(email, "Biodata verified", body)
	}
	body := fmt.Sprintf("Hello %s,\n\nYour biodata was rejected.\n\nReason: %s\n\nPlease correct the form and resubmit.\n\nBest regards,\nPPM Nurul Hakim", name, reason)
	return s.send(email, "Biodata rejected", body)
}

func (s *emailService) SendPaymentDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	if approved {
		body := fmt.Sprintf("Hello %s,\n\nYour payment has been verified. Your admission is complete.\n\nBest regards,\nPPM Nurul Hakim", name)
		return s.send(email, "Payment verified", body)
	}
	body := fmt.Sprintf("Hello %s,\n\nYour payment was rejected.\n\nReason: %s\n\nPlease submit a new transfer proof.\n\nBest regards,\nPPM Nurul Hakim", name, reason)
	return s.send(email, "Payment rejected", body)
}

func (s *emailService) SendPendingReviewDigest(ctx context.Context, email, name string, stats *domain.AdminStats) error {
	body := fmt.Sprintf("Hello %s,\n\nThere are submissions waiting for review:\n\n  Accounts: %d\n  Biodata:  %d\n  Payments: %d\n\nBest regards,\nPPM Nurul Hakim", name, stats.PendingAccounts, stats.PendingBiodata, stats.PendingPayments)
	return s.send(email, "Pending submissions waiting for review", body)
}
