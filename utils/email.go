package utils

import (
	"fmt"
	"os"

	"go-storefront/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		panic("SENDGRID_API_KEY is not set in environment variables")
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	from := mail.NewEmail("Storefront", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid returned %d", response.StatusCode)
	}
	return nil
}

// SendOrderReceived tells the customer their order and payment reference are
// under review. Payment is mobile money verified by hand, so no amount is
// charged here.
func (es *EmailService) SendOrderReceived(toEmail string, order models.Order) error {
	subject := "Order Received - We Are Reviewing Your Payment"
	content := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order (#%s). We have received your payment reference %s and will review it shortly. You will hear from us once your order is confirmed.\n\nOrder Total: Kes %s\n\nThank you for shopping with us!\n",
		order.CustomerName,
		order.ID.Hex(),
		order.PaymentReference,
		order.Total,
	)
	return es.SendEmail(toEmail, subject, content)
}

// SendOrderStatusUpdate notifies the customer after an administrative status
// change.
func (es *EmailService) SendOrderStatusUpdate(toEmail string, order models.Order) error {
	subject := "Order Status Updated"
	content := fmt.Sprintf(
		"Dear %s,\n\nYour order (#%s) is now '%s'.\n\nThank you for shopping with us!\n",
		order.CustomerName,
		order.ID.Hex(),
		order.Status,
	)
	return es.SendEmail(toEmail, subject, content)
}
