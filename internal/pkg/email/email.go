package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendRequestDecision(to, employeeName, requestKind, requestDate, decision string, reason *string) error
	SendScheduleGenerated(to, managerName, departmentName, startDate, endDate string, created int, warnings int) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type requestDecisionEmailData struct {
	EmployeeName string
	RequestKind  string
	RequestDate  string
	Decision     string
	Reason       string
}

// SendRequestDecision notifies an employee that a leave, comp-off or overtime
// request was approved or rejected.
func (s *emailServiceImpl) SendRequestDecision(to, employeeName, requestKind, requestDate, decision string, reason *string) error {
	data := requestDecisionEmailData{
		EmployeeName: employeeName,
		RequestKind:  requestKind,
		RequestDate:  requestDate,
		Decision:     decision,
	}
	if reason != nil {
		data.Reason = *reason
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "request_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your %s request was %s", requestKind, decision), body.String())
}

type scheduleGeneratedEmailData struct {
	ManagerName    string
	DepartmentName string
	StartDate      string
	EndDate        string
	Created        int
	Warnings       int
}

// SendScheduleGenerated notifies a manager that a schedule generation run
// finished for their department.
func (s *emailServiceImpl) SendScheduleGenerated(to, managerName, departmentName, startDate, endDate string, created int, warnings int) error {
	data := scheduleGeneratedEmailData{
		ManagerName:    managerName,
		DepartmentName: departmentName,
		StartDate:      startDate,
		EndDate:        endDate,
		Created:        created,
		Warnings:       warnings,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "schedule_generated.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Schedule generated for %s", departmentName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
