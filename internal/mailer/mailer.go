package mailer

import (
	"fmt"
	"log"
)

// Mailer sends outbound account emails.
type Mailer interface {
	SendVerificationEmail(email, token string) error
}

// LogMailer writes the email to the application log instead of sending it.
// Deployments with a real provider (SendGrid, SES) implement Mailer instead.
type LogMailer struct {
	baseURL string
}

// NewLogMailer creates a log-backed mailer. Verification links are built
// against baseURL.
func NewLogMailer(baseURL string) *LogMailer {
	return &LogMailer{baseURL: baseURL}
}

// SendVerificationEmail logs the verification link for the given address.
func (m *LogMailer) SendVerificationEmail(email, token string) error {
	verifyLink := fmt.Sprintf("%s/api/auth/verify?token=%s", m.baseURL, token)

	log.Println("========================================================")
	log.Printf("SIMULATING SENDING VERIFICATION EMAIL")
	log.Printf("To: %s", email)
	log.Printf("Subject: Verify Your Account")
	log.Printf("Body: To verify your account, please click the following link: %s", verifyLink)
	log.Println("========================================================")

	return nil
}
