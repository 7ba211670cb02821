package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
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

func (s *emailService) SendOverdueRentalReminder(ctx context.Context, to string, overdue []OverdueRental) error {
	if len(overdue) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%d overdue rental(s) need attention", len(overdue)))

	var b strings.Builder
	b.WriteString("The following rentals are past their expected return date:\n\n")
	for _, o := range overdue {
		fmt.Fprintf(&b, "- %s rented by %s, due %s (%d day(s) overdue)",
			o.EquipmentName, o.Rental.CustomerName, o.Rental.ExpectedReturnDate, o.DaysOverdue)
		if o.Rental.CustomerPhone != "" {
			fmt.Fprintf(&b, ", phone %s", o.Rental.CustomerPhone)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nWhites Management")
	m.SetBody("text/plain", b.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}
