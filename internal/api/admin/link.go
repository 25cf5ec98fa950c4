package admin

import (
	"fmt"
	"strings"
)

// FeedbackURL builds the externally shareable submission link for a prompt.
// Hosts that look local get plain http; anything else is assumed to sit
// behind TLS. The check is a substring match on the inbound host string,
// not an exact match and not configuration.
func FeedbackURL(host, promptID string) string {
	protocol := "https"
	if strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1") {
		protocol = "http"
	}

	return fmt.Sprintf("%s://%s/feedback/%s", protocol, host, promptID)
}
