package notify

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/domain"
)

// EmailNotifier sends alerts over SMTP, upgrading to STARTTLS whenever the
// server offers it. Urgent alerts also go to the emergency contact.
type EmailNotifier struct {
	cfg      configs.Email
	contacts configs.Contacts
	timeout  time.Duration
	send     func(ctx context.Context, msg *mail.Msg) error
}

// NewEmailNotifier builds a notifier whose SMTP session, dial included,
// never outlasts timeout or the deadline of the context given to Notify.
func NewEmailNotifier(cfg configs.Email, contacts configs.Contacts, timeout time.Duration) *EmailNotifier {
	if timeout <= 0 {
		timeout = deliveryTimeout
	}
	n := &EmailNotifier{cfg: cfg, contacts: contacts, timeout: timeout}
	n.send = n.dialAndSend
	return n
}

func (n *EmailNotifier) Name() string { return "email" }

// Recipients returns the addresses a is delivered to.
func (n *EmailNotifier) Recipients(a domain.Alert) []string {
	to := []string{n.contacts.PrimaryEmail}
	if a.Severity.Urgent() && n.contacts.EmergencyEmail != "" {
		to = append(to, n.contacts.EmergencyEmail)
	}
	return to
}

// Notify composes a plain text message and delivers it in one SMTP session.
func (n *EmailNotifier) Notify(ctx context.Context, a domain.Alert) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("email sender %q: %w", n.cfg.From, err)
	}
	if err := msg.To(n.Recipients(a)...); err != nil {
		return fmt.Errorf("email recipients: %w", err)
	}
	msg.Subject(Subject(a))
	msg.SetBodyString(mail.TypeTextPlain, FormatMessage(a))

	if err := n.send(ctx, msg); err != nil {
		return fmt.Errorf("send email via %s: %w", n.addr(), err)
	}
	return nil
}

func (n *EmailNotifier) addr() string {
	return net.JoinHostPort(n.cfg.SMTPServer, strconv.Itoa(n.cfg.SMTPPort))
}

func (n *EmailNotifier) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(n.cfg.SMTPPort),
		mail.WithTimeout(n.timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithDialContextFunc(dialSession),
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}
	client, err := mail.NewClient(n.cfg.SMTPServer, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// dialSession connects and applies the context deadline to the connection,
// so a server that stalls after accepting cannot hold the session open.
func dialSession(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return conn, nil
}
