package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/core/domain"
	"ads-firewall/internal/core/port"
	"ads-firewall/internal/core/port/mocks"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func alert(sev domain.Severity) domain.Alert {
	return domain.Alert{
		ID:         "a1",
		Type:       domain.FindingSpendingSpike,
		Severity:   sev,
		ResourceID: "c1",
		Message:    "Campaign spending 350.00 vs average 100.00 (ratio: 3.50)",
		Ratio:      3.5,
		CreatedAt:  fixedNow,
	}
}

func TestFormatMessage(t *testing.T) {
	msg := FormatMessage(alert(domain.SeverityHigh))
	assert.Contains(t, msg, "Type: SPENDING_SPIKE\n")
	assert.Contains(t, msg, "Severity: HIGH\n")
	assert.Contains(t, msg, "Resource: c1\n")
	assert.Contains(t, msg, "Message: Campaign spending 350.00")
	assert.Contains(t, msg, "Time: 2026-03-10 09:30:00")
	assert.Contains(t, msg, "Please review immediately")

	assert.NotContains(t, FormatMessage(alert(domain.SeverityMedium)), "Please review immediately")
	assert.Equal(t, "Ads Firewall Alert - MEDIUM", Subject(alert(domain.SeverityMedium)))
}

func TestSinkPersistsThenNotifies(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	first := mocks.NewMockNotifier(t)
	second := mocks.NewMockNotifier(t)

	var saved domain.Alert
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a domain.Alert) { saved = a }).
		Return(nil).Once()
	first.EXPECT().Name().Return("first").Maybe()
	first.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
	second.EXPECT().Name().Return("second").Maybe()
	second.EXPECT().Notify(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a domain.Alert) { assert.Equal(t, saved.ID, a.ID) }).
		Return(nil).Once()

	s := NewSink(repo, []port.Notifier{first, second}, time.Second, discard())
	s.now = func() time.Time { return fixedNow }

	s.Record(context.Background(), domain.Finding{
		Type:       domain.FindingBudgetBreach,
		Severity:   domain.SeverityHigh,
		ResourceID: "c9",
		Message:    "over budget",
		Ratio:      1.5,
	})

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, domain.FindingBudgetBreach, saved.Type)
	assert.Equal(t, "c9", saved.ResourceID)
	assert.Equal(t, 1.5, saved.Ratio)
	assert.Equal(t, fixedNow, saved.CreatedAt)
}

func TestSinkNotifiesWhenPersistenceFails(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	n := mocks.NewMockNotifier(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db locked")).Once()
	n.EXPECT().Name().Return("log").Maybe()
	n.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

	NewSink(repo, []port.Notifier{n}, time.Second, discard()).Record(context.Background(), domain.Finding{Type: domain.FindingCTRAnomaly})
}

func TestSinkBoundsHungCalls(t *testing.T) {
	repo := mocks.NewMockAlertRepository(t)
	hung := mocks.NewMockNotifier(t)
	next := mocks.NewMockNotifier(t)

	waitForDeadline := func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		<-ctx.Done()
		return ctx.Err()
	}
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Alert) error { return waitForDeadline(ctx) }).Once()
	hung.EXPECT().Name().Return("smtp").Maybe()
	hung.EXPECT().Notify(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Alert) error { return waitForDeadline(ctx) }).Once()
	next.EXPECT().Name().Return("slack").Maybe()
	next.EXPECT().Notify(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Alert) error { return ctx.Err() }).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewSink(repo, []port.Notifier{hung, next}, 50*time.Millisecond, discard()).
			Record(context.Background(), domain.Finding{Type: domain.FindingSpendingSpike, Severity: domain.SeverityHigh})
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Record did not return after its delivery timeouts")
	}
}

func TestSlackNotifier(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	n := NewSlackNotifier(srv.Client(), srv.URL)
	require.NoError(t, n.Notify(context.Background(), alert(domain.SeverityMedium)))
	assert.Contains(t, got["text"], "SPENDING_SPIKE")
}

func TestSlackNotifierRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_token", http.StatusForbidden)
	}))
	defer srv.Close()

	err := NewSlackNotifier(srv.Client(), srv.URL).Notify(context.Background(), alert(domain.SeverityMedium))
	assert.ErrorContains(t, err, "403")
}

func TestEmailNotifierRecipients(t *testing.T) {
	tests := []struct {
		name string
		sev  domain.Severity
		want []string
	}{
		{"medium goes to primary", domain.SeverityMedium, []string{"ops@example.com"}},
		{"high adds emergency", domain.SeverityHigh, []string{"ops@example.com", "oncall@example.com"}},
		{"critical adds emergency", domain.SeverityCritical, []string{"ops@example.com", "oncall@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent *mail.Msg
			n := NewEmailNotifier(
				configs.Email{SMTPServer: "smtp.example.com", SMTPPort: 587, From: "fw@example.com"},
				configs.Contacts{PrimaryEmail: "ops@example.com", EmergencyEmail: "oncall@example.com"},
				time.Second,
			)
			n.send = func(ctx context.Context, msg *mail.Msg) error {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				sent = msg
				return nil
			}

			require.NoError(t, n.Notify(context.Background(), alert(tt.sev)))
			require.NotNil(t, sent)

			to, err := sent.GetRecipients()
			require.NoError(t, err)
			assert.Equal(t, tt.want, to)
			from, err := sent.GetSender(false)
			require.NoError(t, err)
			assert.Equal(t, "fw@example.com", from)
			assert.Equal(t, []string{"Ads Firewall Alert - " + string(tt.sev)}, sent.GetGenHeader(mail.HeaderSubject))
		})
	}
}

func TestEmailNotifierError(t *testing.T) {
	n := NewEmailNotifier(configs.Email{SMTPServer: "smtp", SMTPPort: 25, From: "fw@example.com", Username: "u"},
		configs.Contacts{PrimaryEmail: "a@example.com"}, time.Second)
	n.send = func(context.Context, *mail.Msg) error { return errors.New("535 auth failed") }
	err := n.Notify(context.Background(), alert(domain.SeverityLow))
	assert.ErrorContains(t, err, "535")
	assert.ErrorContains(t, err, "smtp:25")
}

func TestEmailNotifierStalledServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// accept connections and never send the greeting
	var conns []net.Conn
	var mu sync.Mutex
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	n := NewEmailNotifier(
		configs.Email{SMTPServer: "127.0.0.1", SMTPPort: port, From: "fw@example.com"},
		configs.Contacts{PrimaryEmail: "ops@example.com"},
		10*time.Second,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- n.Notify(ctx, alert(domain.SeverityHigh)) }()
	select {
	case err := <-errc:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Notify ignored the context deadline of a stalled SMTP session")
	}
}

func TestSMSNotifier(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "+15550001", r.PostForm.Get("To"))
		assert.Equal(t, "+15550002", r.PostForm.Get("From"))
		assert.Contains(t, r.PostForm.Get("Body"), "Severity: CRITICAL")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	n := NewSMSNotifier(srv.Client(),
		configs.SMS{AccountSID: "AC123", AuthToken: "secret", From: "+15550002", BaseURL: srv.URL},
		configs.Contacts{PrimaryPhone: "+15550001"})

	require.NoError(t, n.Notify(context.Background(), alert(domain.SeverityMedium)))
	assert.Zero(t, calls, "non-urgent alerts are not texted")

	require.NoError(t, n.Notify(context.Background(), alert(domain.SeverityCritical)))
	assert.Equal(t, 1, calls)
}

func TestTruncateKeepsRunes(t *testing.T) {
	s := strings.Repeat("a", 9) + "é" // é is two bytes
	assert.Equal(t, strings.Repeat("a", 9), truncate(s, 10))
	assert.Equal(t, s, truncate(s, 11))
	assert.Equal(t, "aaa", truncate(s, 3))
	assert.True(t, utf8.ValidString(truncate(strings.Repeat("€", 200), smsLimit)))
	assert.LessOrEqual(t, len(truncate(strings.Repeat("€", 200), smsLimit)), smsLimit)
}

func TestSMSNotifierFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":20003}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := NewSMSNotifier(srv.Client(), configs.SMS{AccountSID: "AC1", BaseURL: srv.URL}, configs.Contacts{})
	assert.ErrorContains(t, n.Notify(context.Background(), alert(domain.SeverityHigh)), "20003")
}

func TestSlackNotifierErrorOmitsWebhook(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	webhook := srv.URL + "/services/T000/B000/XXXXSECRET"
	srv.Close()

	err := NewSlackNotifier(&http.Client{Timeout: time.Second}, webhook).Notify(context.Background(), alert(domain.SeverityHigh))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "XXXXSECRET")
}

func TestFromConfig(t *testing.T) {
	names := func(cfg configs.Alerts) []string {
		var out []string
		for _, n := range FromConfig(cfg, discard()) {
			out = append(out, n.Name())
		}
		return out
	}

	assert.Equal(t, []string{"log"}, names(configs.Alerts{}))
	assert.Equal(t, []string{"log", "email", "slack", "sms"}, names(configs.Alerts{
		Email: configs.Email{Enabled: true},
		Slack: configs.Slack{Enabled: true},
		SMS:   configs.SMS{Enabled: true},
	}))
}
