// Package mailer sends the two transactional emails of a submission
// over plain SMTP: an internal alert to the business inbox and a
// confirmation to the submitter.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"

	"muebleria/api/internal/core/domain"
)

const senderName = "Mueblería Familiar"

var alertTmpl = template.Must(template.New("alert").Parse(`<h2>Nueva consulta desde la web</h2>
<p><strong>Nombre:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Teléfono:</strong> {{.Phone}}</p>
<p><strong>Mensaje:</strong></p>
<p>{{.Message}}</p>
{{if .ProductID}}<p><strong>Producto consultado:</strong> ID {{.ProductID}}</p>{{end}}
<hr>
<p><small>Consulta recibida el {{.ReceivedAt}}</small></p>`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h2>¡Gracias por tu consulta!</h2>
<p>Hola {{.Name}},</p>
<p>Hemos recibido tu consulta y nos pondremos en contacto contigo a la brevedad.</p>
<h3>Resumen de tu consulta:</h3>
<p><strong>Mensaje:</strong> {{.Message}}</p>
<p>Nos comunicaremos contigo por teléfono ({{.Phone}}) o email en las próximas 24 horas.</p>
<p>¡Gracias por elegirnos!</p>
<p><strong>Mueblería Familiar</strong></p>`))

type templateData struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	ProductID  string
	ReceivedAt string
}

// Mailer is the SMTP-backed domain.Notifier. The client is built once
// and reused across invocations; it is not mutated per call.
type Mailer struct {
	client *mail.Client
	// Sender identity doubles as the business inbox for internal alerts.
	account string
}

// New builds the transport. Port 587 with opportunistic STARTTLS is the
// assumed server posture; authentication is plain over the upgraded link.
func New(host string, port int, user, pass string) (*Mailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("building smtp client: %w", err)
	}
	return &Mailer{client: client, account: user}, nil
}

// SendInternalAlert notifies the business inbox about a new inquiry.
func (m *Mailer) SendInternalAlert(ctx context.Context, inq *domain.Inquiry) error {
	subject := "Nueva consulta: " + inq.Name
	body, err := render(alertTmpl, inq)
	if err != nil {
		return &domain.NotificationError{Recipient: m.account, Err: err}
	}
	return m.send(ctx, m.account, subject, body)
}

// SendConfirmation acknowledges receipt to the submitter.
func (m *Mailer) SendConfirmation(ctx context.Context, inq *domain.Inquiry) error {
	body, err := render(confirmationTmpl, inq)
	if err != nil {
		return &domain.NotificationError{Recipient: inq.Email, Err: err}
	}
	return m.send(ctx, inq.Email, "Confirmación de consulta recibida", body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	msg, err := BuildMessage(m.account, to, subject, body)
	if err != nil {
		return &domain.NotificationError{Recipient: to, Err: err}
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return &domain.NotificationError{Recipient: to, Err: err}
	}
	return nil
}

// BuildMessage assembles a single HTML message with the fixed sender
// identity. Split out so tests can assert on envelope and headers
// without a live SMTP server.
func BuildMessage(account, to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(senderName, account); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", account, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

func render(tmpl *template.Template, inq *domain.Inquiry) (string, error) {
	data := templateData{
		Name:       inq.Name,
		Email:      inq.Email,
		Phone:      inq.Phone,
		Message:    inq.Message,
		ReceivedAt: time.Now().Format("02/01/2006 15:04"),
	}
	if inq.ProductID != nil {
		data.ProductID = *inq.ProductID
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering email body: %w", err)
	}
	return buf.String(), nil
}
