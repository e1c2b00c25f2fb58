package service

import (
	"context"
	"fmt"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailNotifier(apiKey, fromEmail, fromName string) DueSoonNotifier {
	return &emailNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailNotifier) SendDueSoonNotice(ctx context.Context, user *domain.User, bookTitle string, daysRemaining int) error {
	if user.Email == "" {
		// Accounts without an email still get the notice recorded in the log.
		logger.Info("due-soon notice",
			"username", user.Username, "book_title", bookTitle, "days_remaining", daysRemaining)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(user.Username, user.Email)

	subject := fmt.Sprintf("Your borrowed book '%s' is due in %d days", bookTitle, daysRemaining)
	plainText := fmt.Sprintf("Hello %s,\n\nYour borrowed book '%s' is due in %d days. Please return or renew it in time.\n\nYour Library", user.Username, bookTitle, daysRemaining)
	htmlContent := fmt.Sprintf("<p>Hello %s,</p><p>Your borrowed book <strong>%s</strong> is due in <strong>%d</strong> days. Please return or renew it in time.</p>", user.Username, bookTitle, daysRemaining)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)
	client := sendgrid.NewSendClient(s.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send due-soon email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
