package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/logger"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, email, name, carModel string, rental *domain.Rental) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Rental Confirmed - %s", carModel))

	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of %s has been confirmed.\n\nPickup date: %s\nReturn date: %s\nTotal fee: %s\n\nBest regards,\nThe Rental Car Team",
		name,
		carModel,
		rental.Period.StartDate.Format("2006-01-02"),
		rental.Period.EndDate.Format("2006-01-02"),
		rental.TotalFee.String(),
	)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}

// noopEmailService logs instead of sending. Used when SMTP is not configured.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return &noopEmailService{}
}

func (s *noopEmailService) SendRentalConfirmation(ctx context.Context, email, name, carModel string, rental *domain.Rental) error {
	logger.Info("email sending disabled, skipping rental confirmation",
		"to", email,
		"rental_id", rental.ID)
	return nil
}
