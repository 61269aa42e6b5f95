package service

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"net/url"
	"text/template"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier tells an invitee about a freshly minted invitation. Failures are
// logged by the caller and never undo the invitation.
type Notifier interface {
	InvitationCreated(ctx context.Context, inv domain.InvitationDetails) error
}

// LogNotifier records the invitation in the log instead of mailing it. Used
// when no mail provider is configured.
type LogNotifier struct{}

func (LogNotifier) InvitationCreated(ctx context.Context, inv domain.InvitationDetails) error {
	slogx.FromContext(ctx).Info("invitation email skipped, no mail provider configured",
		slog.String("invitation_id", inv.ID),
		slog.String("email", inv.Email),
		slog.String("organization_id", inv.OrganizationID),
	)
	return nil
}

// MailClient is the subset of *sendgrid.Client used here.
type MailClient interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridNotifier struct {
	Client   MailClient
	From     string
	FromName string
	// AppURL is the base of the join link, e.g. https://desk.example.com.
	AppURL string
}

func NewSendGridNotifier(apiKey, from, appURL string) *SendGridNotifier {
	return &SendGridNotifier{
		Client:   sendgrid.NewSendClient(apiKey),
		From:     from,
		FromName: "MasterTicket",
		AppURL:   appURL,
	}
}

type invitationEmail struct {
	Organization string
	Team         string
	Inviter      string
	Code         string
	Role         string
	JoinURL      string
	ExpiresAt    string
}

var (
	invitationText = template.Must(template.New("text").Parse(
		`{{.Inviter}} invited you to join {{.Organization}}{{if .Team}} ({{.Team}}){{end}} as {{.Role}}.

Your invitation code is {{.Code}}.
{{if .JoinURL}}Join here: {{.JoinURL}}
{{end}}
The code expires {{.ExpiresAt}}.
`))

	invitationHTML = htmltemplate.Must(htmltemplate.New("html").Parse(
		`<p>{{.Inviter}} invited you to join <strong>{{.Organization}}</strong>{{if .Team}} ({{.Team}}){{end}} as {{.Role}}.</p>
<p>Your invitation code is <strong style="font-size:1.4em;letter-spacing:.2em">{{.Code}}</strong>.</p>
{{if .JoinURL}}<p><a href="{{.JoinURL}}">Join {{.Organization}}</a></p>{{end}}
<p>The code expires {{.ExpiresAt}}.</p>
`))
)

func (n *SendGridNotifier) InvitationCreated(ctx context.Context, inv domain.InvitationDetails) error {
	msg, err := n.buildMessage(inv)
	if err != nil {
		return err
	}

	resp, err := n.Client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode != 202 {
		return fmt.Errorf("sendgrid: unexpected status %d: %s", resp.StatusCode, resp.Body)
	}

	slogx.FromContext(ctx).Info("invitation email sent",
		slog.String("invitation_id", inv.ID),
		slog.String("email", inv.Email),
	)
	return nil
}

func (n *SendGridNotifier) buildMessage(inv domain.InvitationDetails) (*mail.SGMailV3, error) {
	data := invitationEmail{
		Organization: inv.OrganizationName,
		Team:         inv.TeamName,
		Inviter:      inv.InviterName,
		Code:         inv.Code,
		Role:         inv.Role.String(),
		ExpiresAt:    inv.ExpiresAt.UTC().Format(time.RFC1123),
	}
	if data.Inviter == "" {
		data.Inviter = inv.InviterEmail
	}
	if n.AppURL != "" {
		data.JoinURL = n.AppURL + "/join?code=" + url.QueryEscape(inv.Code)
	}

	var text, html bytes.Buffer
	if err := invitationText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	if err := invitationHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	subject := fmt.Sprintf("You're invited to join %s", inv.OrganizationName)
	return mail.NewSingleEmail(
		mail.NewEmail(n.FromName, n.From),
		subject,
		mail.NewEmail("", inv.Email),
		text.String(),
		html.String(),
	), nil
}
