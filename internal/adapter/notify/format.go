package notify

import (
	"fmt"
	"strings"

	"ads-firewall/internal/core/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatMessage renders the plain-text body shared by all channels.
func FormatMessage(a domain.Alert) string {
	var b strings.Builder
	b.WriteString("ADS FIREWALL ALERT\n\n")
	fmt.Fprintf(&b, "Type: %s\n", a.Type)
	fmt.Fprintf(&b, "Severity: %s\n", a.Severity)
	fmt.Fprintf(&b, "Resource: %s\n", a.ResourceID)
	fmt.Fprintf(&b, "Message: %s\n\n", a.Message)
	fmt.Fprintf(&b, "Time: %s\n", a.CreatedAt.Format(timeLayout))
	if a.Severity.Urgent() {
		b.WriteString("\nPlease review immediately if severity is HIGH or CRITICAL.\n")
	}
	return b.String()
}

// Subject is the e-mail subject line for a.
func Subject(a domain.Alert) string {
	return "Ads Firewall Alert - " + string(a.Severity)
}
