// Package contact builds the landlord contact links surfaced on listing pages.
package contact

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink returns a wa.me deep link for the given phone number. The number
// is stripped to digits so stored formats like "+254 7xx" or "07xx-xxx" all work.
func WhatsAppLink(number, message string) string {
	digits := digitsOnly(number)
	if digits == "" {
		return ""
	}
	link := fmt.Sprintf("https://wa.me/%s", digits)
	if message != "" {
		params := url.Values{}
		params.Set("text", message)
		link += "?" + params.Encode()
	}
	return link
}

// TelLink returns a tel: URI for dialer handoff.
func TelLink(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	return "tel:" + trimmed
}

// InquiryMessage is the prefilled WhatsApp text for a listing.
func InquiryMessage(propertyType, neighborhood string, price int) string {
	return fmt.Sprintf(
		"Hi, I'm interested in the %s in %s for Ksh %s/month. Can I schedule a viewing?",
		propertyType, neighborhood, FormatPrice(price),
	)
}

// FormatPrice renders a whole KSh amount with thousands separators.
func FormatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

func digitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
