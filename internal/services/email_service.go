package services

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/gomail.v2"
)

var ErrMailerDisabled = eris.New("mail delivery is not configured")

// Attachment is a file sent along with an e-mail.
type Attachment struct {
	Filename    string
	ContentType string
	Body        []byte
}

type EmailService interface {
	SendExport(to, userName string, att Attachment, rows int) error
}

// mailDialer: то, что нужно от gomail.Dialer (удобно подменять в тестах)
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	dialer mailDialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendExport(to, userName string, att Attachment, rows int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your lead export: "+att.Filename)

	greeting := "Hello"
	if userName != "" {
		greeting = "Hello, " + html.EscapeString(userName)
	}
	body := fmt.Sprintf(`
		<h2>%s!</h2>
		<p>Attached is the lead export you requested (%d leads).</p>
		<p>Best regards,<br>Impactio One</p>
	`, greeting, rows)
	m.SetBody("text/html", body)

	m.Attach(att.Filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(att.Body))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {att.ContentType}}),
	)

	if err := s.dialer.DialAndSend(m); err != nil {
		return eris.Wrap(err, "failed to send export email")
	}
	return nil
}
