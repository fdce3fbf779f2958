package email

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template names.
const (
	TemplatePasswordReset = "password_reset"
	TemplateOwnerInfo     = "owner_info"
	TemplateBuyerInterest = "buyer_interest"
)

// Subjects sent with each template.
const (
	SubjectPasswordReset = "Password Reset"
	SubjectOwnerInfo     = "Property Owner Information"
	SubjectBuyerInterest = "Interested Buyer Information"
)

var defaultTemplates = map[string]string{
	TemplatePasswordReset: `Your new password is:  {{.NewPassword}}
Please change your password after logging in.`,

	TemplateOwnerInfo: `Hello {{.BuyerFirstName}},

You have requested the owner details for the property titled "{{.PropertyTitle}}". Here are the details:

Owner Name: {{.OwnerFirstName}} {{.OwnerLastName}}
Email: {{.OwnerEmail}}
Phone: {{.OwnerPhone}}

Thank you,
RENTIFY`,

	TemplateBuyerInterest: `Hello {{.OwnerFirstName}},

A buyer is interested in your property titled "{{.PropertyTitle}}". Here are the details of the buyer:

Buyer Name: {{.BuyerFirstName}} {{.BuyerLastName}}
Email: {{.BuyerEmail}}
Phone: {{.BuyerPhone}}

Thank you,
RENTIFY`,
}

// TemplateManager renders the built-in message templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

// NewTemplateManager parses the built-in templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, text := range defaultTemplates {
		tpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		tm.templates[name] = tpl
	}
	return tm, nil
}

// Render executes the named template with the given data.
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
