package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Sender defines the interface for email operations
type Sender interface {
	SendBookingConfirmation(booking BookingConfirmation) error
}

// SMTPConfig holds configuration for the SMTP relay
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// BookingConfirmation carries everything the confirmation mail mentions.
type BookingConfirmation struct {
	StudentName      string
	Email            string
	MeetingTime      time.Time
	MeetLink         string
	Category         string
	BranchPreference string
	Percentile       float64
}

// senderImpl implements Sender over an SMTP relay
type senderImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSender creates a new email Sender
func NewSender(config SMTPConfig, logger zerolog.Logger) Sender {
	return &senderImpl{
		config: config,
		logger: logger,
	}
}

// SendBookingConfirmation sends the consultation confirmation email.
// Without SMTP credentials the mail is logged instead of sent and treated
// as delivered, so development environments behave like production.
func (s *senderImpl) SendBookingConfirmation(booking BookingConfirmation) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Info().
			Str("toEmail", booking.Email).
			Time("meetingTime", booking.MeetingTime).
			Str("meetLink", booking.MeetLink).
			Msg("SMTP credentials not configured - logging booking confirmation instead of sending")
		return nil
	}

	subject := "Consultation Booking Confirmed - MHT CET Guidance"
	body := formatConfirmationHTML(booking)

	return s.sendHTMLEmail(booking.Email, subject, body)
}

// formatConfirmationHTML renders the confirmation mail body.
func formatConfirmationHTML(booking BookingConfirmation) string {
	date := booking.MeetingTime.Format("Monday, 2 January 2006")
	timeOfDay := booking.MeetingTime.Format("15:04")

	return fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Booking Confirmed!</h2>
				<p>Dear %s,</p>
				<p>Your consultation booking has been confirmed.</p>

				<h3>Booking Details</h3>
				<p>
					Date: %s<br>
					Time: %s<br>
					Duration: 30 minutes<br>
					Category: %s<br>
					Branch Preference: %s<br>
					Your Percentile: %.2f
				</p>

				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Join Google Meet</a>
				</div>

				<p><strong>Important Notes:</strong></p>
				<ul>
					<li>Keep your percentile card ready for reference</li>
					<li>Prepare any specific questions about admissions</li>
					<li>The counselor will guide you through college options</li>
				</ul>

				<p>If you need to reschedule, please contact us.</p>

				<p>Best regards,<br>MHT CET Guidance Team</p>
			</div>
		</body>
		</html>
	`, booking.StudentName, date, timeOfDay, booking.Category, booking.BranchPreference, booking.Percentile, booking.MeetLink)
}

// sendHTMLEmail sends an HTML email
func (s *senderImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		if _, err = w.Write([]byte(message)); err != nil {
			return fmt.Errorf("failed to write email message: %w", err)
		}
		if err = w.Close(); err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return nil
	}

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
