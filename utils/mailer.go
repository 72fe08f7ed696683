package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"quickfix/config"
	"quickfix/models"
)

type EmailData struct {
	Subject   string
	To        []string
	Template  string
	Data      interface{}
	FromName  string
	FromEmail string
}

// Embedded email templates
var emailTemplates = map[string]string{
	"lead_notification": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .score { font-size: 20px; font-weight: bold; color: #e67e22; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>New {{.Lead.Type}} request from {{.Lead.Name}}</h2>
    </div>

    <div class="content">
        <p><strong>Name:</strong> {{.Lead.Name}}</p>
        <p><strong>Email:</strong> {{.Lead.Email}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <p><strong>Service:</strong> {{.Service}}</p>
        <p><strong>Urgency:</strong> {{.Lead.Urgency}}</p>
        {{if .Lead.Address}}<p><strong>Address:</strong> {{.Lead.Address}}</p>{{end}}
        {{if .Lead.PreferredDate}}<p><strong>Preferred:</strong> {{.Lead.PreferredDate}} {{.Lead.PreferredTime}}</p>{{end}}
        <p><strong>Lead score:</strong> <span class="score">{{.Lead.LeadScore}}</span></p>
        <p><strong>Message:</strong></p>
        <p>{{.Lead.Message}}</p>
    </div>

    <div class="footer">
        <p>Submitted via {{.Lead.Source}} on {{.Lead.CreatedAt}}.</p>
        <p>© {{.Year}} QuickFix Services. All rights reserved.</p>
    </div>
</body>
</html>`,
}

// NotifyLeadCreated emails the business inbox about a freshly accepted
// submission. With no SMTP host configured it is a logged no-op so the
// intake flow never depends on a mail server being reachable.
func NotifyLeadCreated(lead *models.Lead) error {
	if config.AppConfig.SMTP.Host == "" {
		LogEvent("email_skipped", map[string]interface{}{
			"reason": "smtp not configured",
			"email":  lead.Email,
		})
		return nil
	}

	phone := lead.Phone
	if phone == "" {
		phone = "Not provided"
	}
	service := lead.Service
	if service == "" {
		service = "General inquiry"
	}

	return SendEmail(EmailData{
		Subject:  fmt.Sprintf("New %s from %s", lead.Type, lead.Name),
		To:       []string{config.AppConfig.NotifyEmail},
		Template: "lead_notification",
		Data: struct {
			Subject string
			Lead    *models.Lead
			Phone   string
			Service string
			Year    int
		}{
			Subject: fmt.Sprintf("New %s from %s", lead.Type, lead.Name),
			Lead:    lead,
			Phone:   FormatPhoneNumber(phone),
			Service: service,
			Year:    time.Now().Year(),
		},
	})
}

func SendEmail(data EmailData) error {
	// Set default from address if not provided
	if data.FromEmail == "" {
		data.FromEmail = config.AppConfig.SMTP.FromEmail
	}
	if data.FromName == "" {
		data.FromName = config.AppConfig.SMTP.FromName
	}

	// Get template from embedded templates
	tmplContent, ok := emailTemplates[data.Template]
	if !ok {
		return fmt.Errorf("template '%s' not found", data.Template)
	}

	// Parse template
	tmpl, err := template.New("email").Parse(tmplContent)
	if err != nil {
		return fmt.Errorf("error parsing template: %v", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data.Data); err != nil {
		return fmt.Errorf("error executing template: %v", err)
	}

	// Create email message
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", data.FromName, data.FromEmail))
	m.SetHeader("To", data.To...)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/html", body.String())

	// Send email
	d := gomail.NewDialer(
		config.AppConfig.SMTP.Host,
		config.AppConfig.SMTP.Port,
		config.AppConfig.SMTP.Username,
		config.AppConfig.SMTP.Password,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
