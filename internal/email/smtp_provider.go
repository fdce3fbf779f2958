package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP provider settings.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Validate rejects configurations the dialer cannot use.
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("SMTP port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPProvider delivers mail through an SMTP relay via gomail.
type SMTPProvider struct {
	config    Config
	dialer    *gomail.Dialer
	templates *TemplateManager
}

// NewSMTPProvider builds the provider and parses the message templates.
func NewSMTPProvider(config Config) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	return &SMTPProvider{
		config:    config,
		dialer:    gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
		templates: tm,
	}, nil
}

// Send delivers a single message. Each call dials anew; mail volume here
// is a handful of messages per user action, not a queue.
func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}

	msg := gomail.NewMessage()
	if p.config.FromName != "" {
		msg.SetAddressHeader("From", from, p.config.FromName)
	} else {
		msg.SetHeader("From", from)
	}
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		msg.AddAlternative("text/html", email.HTMLBody)
	}

	return p.dialer.DialAndSend(msg)
}

// SendTemplate renders the named template and delivers it.
func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	body, err := p.templates.Render(templateName, data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

// SendPasswordReset mails the new password generated by the
// forgot-password flow.
func (p *SMTPProvider) SendPasswordReset(to, firstName, newPassword string) error {
	return p.SendTemplate([]string{to}, SubjectPasswordReset, TemplatePasswordReset, TemplateData{
		"FirstName":   firstName,
		"NewPassword": newPassword,
	})
}

// SendOwnerInfo mails the owner's contact details to the buyer.
func (p *SMTPProvider) SendOwnerInfo(buyer ContactInfo, owner ContactInfo, propertyTitle string) error {
	return p.SendTemplate([]string{buyer.Email}, SubjectOwnerInfo, TemplateOwnerInfo, TemplateData{
		"BuyerFirstName": buyer.FirstName,
		"PropertyTitle":  propertyTitle,
		"OwnerFirstName": owner.FirstName,
		"OwnerLastName":  owner.LastName,
		"OwnerEmail":     owner.Email,
		"OwnerPhone":     owner.PhoneNumber,
	})
}

// SendBuyerInterest notifies the owner about the buyer.
func (p *SMTPProvider) SendBuyerInterest(owner ContactInfo, buyer ContactInfo, propertyTitle string) error {
	return p.SendTemplate([]string{owner.Email}, SubjectBuyerInterest, TemplateBuyerInterest, TemplateData{
		"OwnerFirstName": owner.FirstName,
		"PropertyTitle":  propertyTitle,
		"BuyerFirstName": buyer.FirstName,
		"BuyerLastName":  buyer.LastName,
		"BuyerEmail":     buyer.Email,
		"BuyerPhone":     buyer.PhoneNumber,
	})
}
