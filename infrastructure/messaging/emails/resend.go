package emails

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/resend/resend-go/v2"
	"idguard.io/infrastructure/logger"
)

var templateRoot, _ = os.Getwd()

var EmailService EmailServiceType = &ResendService{}

type ResendService struct {
}

// SendEmail renders the named template and delivers it through resend.
// Returns false on any failure so queue handlers can retry.
func (rs *ResendService) SendEmail(toEmail string, subject string, templateName string, opts interface{}) bool {
	html, err := rs.render(templateName, opts)
	if err != nil {
		logger.Error("failed to render email template", logger.LoggerOptions{
			Key:  "templateName",
			Data: templateName,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false
	}

	client := resend.NewClient(os.Getenv("RESEND_API_KEY"))
	_, err = client.Emails.Send(&resend.SendEmailRequest{
		From:    os.Getenv("RESEND_DEFAULT_EMAIL"),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		logger.Error("resend delivery failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "toEmail",
			Data: toEmail,
		}, logger.LoggerOptions{
			Key:  "templateName",
			Data: templateName,
		})
		return false
	}

	logger.Info(fmt.Sprintf("email sent to %s", toEmail), logger.LoggerOptions{
		Key:  "templateName",
		Data: templateName,
	}, logger.LoggerOptions{
		Key:  "service",
		Data: "resend",
	})
	return true
}

// render executes a template from the on-disk template directory against
// the options the queue task carried.
func (rs *ResendService) render(templateName string, opts interface{}) (string, error) {
	templatePath := filepath.Join(templateRoot, "infrastructure", "messaging", "emails", "templates", templateName+".html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template at %s: %w", templatePath, err)
	}
	var buffer bytes.Buffer
	if err = tmpl.Execute(&buffer, opts); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buffer.String(), nil
}
