package email

// Provider is the outbound-email port. Services depend on this interface;
// tests substitute a recording fake.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers the result.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// SendPasswordReset mails a freshly generated password to the user.
	SendPasswordReset(to, firstName, newPassword string) error

	// SendOwnerInfo mails the owner's contact details to an interested buyer.
	SendOwnerInfo(buyer ContactInfo, owner ContactInfo, propertyTitle string) error

	// SendBuyerInterest notifies the owner about an interested buyer.
	SendBuyerInterest(owner ContactInfo, buyer ContactInfo, propertyTitle string) error
}
