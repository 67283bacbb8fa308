package validators

import "net/mail"

// IsEmailValid accepts RFC 5322 addresses with a dotted domain. Gin's
// binding already rejects most garbage; this catches bare-host domains.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := -1
	for i := len(email) - 1; i >= 0; i-- {
		if email[i] == '@' {
			at = i
			break
		}
	}
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	hasDot := false
	for _, c := range domain {
		if c == '.' {
			hasDot = true
			break
		}
	}
	return hasDot
}
