package email

// Email represents an outbound message. Bodies here are plain text; HTML
// is allowed but none of the current templates use it.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the message templates.
type TemplateData map[string]interface{}

// ContactInfo is the slice of a user shared over email in the
// owner/buyer introduction flow.
type ContactInfo struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}
