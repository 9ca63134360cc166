package inkpress

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "US"

// NormalizePhone formats a phone number as E.164 when it parses,
// otherwise it returns the trimmed input untouched. Profile phones are
// informational so a bad number is stored, not rejected.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, defaultPhoneRegion)
	if err != nil {
		return phone
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return phone
	}

	return phonenumbers.Format(parsed, phonenumbers.E164)
}
