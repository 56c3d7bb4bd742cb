// Package email sends booking notifications to requesters
package email

import (
	"bannerdesk/internal/config"
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

// Review describes a moderation decision sent to the requester
type Review struct {
	To        string
	Username  string
	BookingID string
	ZoneName  string
	Position  string
	StartDate string
	EndDate   string
	PriceUSD  int
	Approved  bool
	Notes     string
}

// Notifier defines the interface for booking notifications
type Notifier interface {
	SendBookingReviewed(ctx context.Context, r Review) error
}

// Dialer is the part of *mail.Dialer used by Service
type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Service implements Notifier over SMTP
type Service struct {
	config config.EmailConfig
	dialer Dialer
	log    *zap.Logger
}

// NewService creates an SMTP notifier from the email settings
func NewService(cfg config.EmailConfig, log *zap.Logger) *Service {
	d := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	d.StartTLSPolicy = mail.OpportunisticStartTLS
	return NewServiceWithDialer(cfg, d, log)
}

// NewServiceWithDialer creates a notifier using the given dialer
func NewServiceWithDialer(cfg config.EmailConfig, d Dialer, log *zap.Logger) *Service {
	return &Service{config: cfg, dialer: d, log: log}
}

var reviewTemplate = template.Must(template.New("review").Parse(`
<h2>Hello {{.Username}},</h2>
{{if .Approved}}
<p>Your banner booking for <strong>{{.ZoneName}}</strong> ({{.Position}}) has been approved.</p>
<p>It will run from {{.StartDate}} to {{.EndDate}}. Price: {{.PriceUSD}} USD.</p>
{{else}}
<p>Your banner booking for <strong>{{.ZoneName}}</strong> ({{.Position}}, {{.StartDate}} to {{.EndDate}}) was not approved.</p>
{{end}}
{{if .Notes}}<p>Note from the moderators: {{.Notes}}</p>{{end}}
{{if .URL}}<p><a href="{{.URL}}">View booking</a></p>{{end}}
`))

// Compose builds the message without sending it
func (s *Service) Compose(r Review) (*mail.Message, error) {
	subject := "Your banner booking was not approved"
	if r.Approved {
		subject = "Your banner booking was approved"
	}

	url := ""
	if s.config.AppURL != "" {
		url = fmt.Sprintf("%s/bookings/%s", s.config.AppURL, r.BookingID)
	}

	var body bytes.Buffer
	if err := reviewTemplate.Execute(&body, struct {
		Review
		URL string
	}{r, url}); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	m := mail.NewMessage(mail.SetEncoding(mail.Unencoded))
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", r.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())
	return m, nil
}

func (s *Service) SendBookingReviewed(_ context.Context, r Review) error {
	if !s.config.Enabled() {
		return fmt.Errorf("incomplete email configuration")
	}

	m, err := s.Compose(r)
	if err != nil {
		return err
	}

	s.log.Debug("sending booking review email",
		zap.String("booking_id", r.BookingID),
		zap.Bool("approved", r.Approved),
	)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking review email: %w", err)
	}
	return nil
}

// NopNotifier drops notifications
type NopNotifier struct{}

func (NopNotifier) SendBookingReviewed(context.Context, Review) error { return nil }
