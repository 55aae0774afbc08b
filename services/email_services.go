package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"api/config"
	"api/metrics"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

func (s *EmailService) send(to []string, msg []byte) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, to, msg)
}

// SendRegistrationConfirmation emails one member their team code after a
// successful registration.
func (s *EmailService) SendRegistrationConfirmation(to, teamName, teamCode string) error {
	msg := []byte(fmt.Sprintf(confirmationTemplate, to, teamName, teamCode))
	if err := s.send([]string{to}, msg); err != nil {
		metrics.EmailSendFailures.WithLabelValues("confirmation").Inc()
		return err
	}
	return nil
}

// SendSelectionEmail notifies every team member that the team was selected.
// Each recipient is mailed individually; the first failure is returned after
// all sends were attempted.
func (s *EmailService) SendSelectionEmail(teamName, teamCode string, recipients []string) error {
	var firstErr error
	for _, to := range recipients {
		msg := []byte(fmt.Sprintf(selectionTemplate, to, teamName, teamCode))
		if err := s.send([]string{to}, msg); err != nil {
			metrics.EmailSendFailures.WithLabelValues("selection").Inc()
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// SendPaymentVerifiedEmail notifies every team member that the participation
// fee was verified. Same per-recipient contract as SendSelectionEmail.
func (s *EmailService) SendPaymentVerifiedEmail(teamName, teamCode string, recipients []string) error {
	var firstErr error
	for _, to := range recipients {
		msg := []byte(fmt.Sprintf(paymentVerifiedTemplate, to, teamName, teamCode))
		if err := s.send([]string{to}, msg); err != nil {
			metrics.EmailSendFailures.WithLabelValues("payment_verified").Inc()
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// SendContactEmail relays a contact form submission to the organizer inbox
func (s *EmailService) SendContactEmail(name, replyTo, message string) error {
	msg := []byte(strings.TrimSpace(fmt.Sprintf(contactTemplate, s.username, replyTo, name, name, replyTo, message)))
	return s.send([]string{s.username}, msg)
}

var confirmationTemplate = strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Registration Confirmed | HackmanV8

<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333; text-align: center; margin-bottom: 30px;">Welcome to HackmanV8!</h2>

  <h3>Hello %s!</h3>

  <p>Your team has been registered for <strong>HackmanV8</strong>.</p>

  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <h4 style="margin-top: 0; color: #333;">Important Details:</h4>
    <p><strong>Team ID:</strong> <code>%s</code></p>
  </div>

  <p>Keep the team ID safe: it is your team's access credential for the dashboard.</p>

  <hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;">

  <p style="font-size: 12px; color: #666; text-align: center;">
    HackmanV8<br>
    Questions? Contact us at ise.genesis.dsce@gmail.com
  </p>
</div>
`)

var selectionTemplate = strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: 🎉 Congratulations! You're in!

<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333; text-align: center; margin-bottom: 30px;">
    🎉 You're Selected | HackmanV8
  </h2>

  <h3>Hello %s!</h3>

  <p>Great news — your team has been <strong>selected</strong> for <strong><a href="https://hackman.dsce.in/">HackmanV8</a></strong>! 🎉</p>

  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <h4 style="margin-top: 0; color: #333;">Important Details:</h4>
    <p><strong>Team ID:</strong> <code>%s</code></p>
  </div>

  <h4>Next Steps:</h4>
  <p>Please proceed to the dashboard using the team lead's credentials and <strong>make the payment</strong> to confirm your spot.</p>

  <p>If you have any questions, reply to this email.</p>

  <hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;">

  <p style="font-size: 12px; color: #666; text-align: center;">
    HackmanV8<br>
    Questions? Contact us at ise.genesis.dsce@gmail.com
  </p>
</div>
`)

var paymentVerifiedTemplate = strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Payment Verified | HackmanV8

<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333; text-align: center; margin-bottom: 30px;">Payment Verified | HackmanV8</h2>

  <h3>Hello %s!</h3>

  <p>Your payment has been <strong>verified</strong> and your spot at <strong>HackmanV8</strong> is confirmed.</p>

  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <h4 style="margin-top: 0; color: #333;">Important Details:</h4>
    <p><strong>Team ID:</strong> <code>%s</code></p>
  </div>

  <p>See you at the venue. Further instructions will follow over email.</p>

  <hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;">

  <p style="font-size: 12px; color: #666; text-align: center;">
    HackmanV8<br>
    Questions? Contact us at ise.genesis.dsce@gmail.com
  </p>
</div>
`)

var contactTemplate = `
To: %s
Reply-To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: New Contact Form Submission from %s

<p>You have a new submission from the contact form of HackmanV8:</p>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
`
