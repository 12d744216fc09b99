package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a domain that resolves,
// via MX records or a plain host lookup. Run before registration so an
// obvious typo never reaches the server.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// NormalizeEmail lowercases and trims the address the way the server does
// before comparing credentials.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
