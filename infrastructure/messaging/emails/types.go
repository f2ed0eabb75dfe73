package emails

// EmailServiceType delivers guardian-facing notification emails rendered
// from the html templates shipped with the binary.
type EmailServiceType interface {
	SendEmail(toEmail string, subject string, templateName string, opts interface{}) bool
	render(templateName string, opts interface{}) (string, error)
}
