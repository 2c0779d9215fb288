package checkout

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"gadgetry/models"
)

// basic local@domain.tld shape, nothing RFC-grade
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate applies the checkout rules in order; the first failing rule
// wins and its message names the offending field.
func validate(req models.CheckoutRequest) error {
	if len(req.CartItems) == 0 {
		return errors.New("Cart is empty")
	}

	// length limits are in characters, not bytes
	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return errors.New("Invalid name (2-100 characters required)")
	}

	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) || utf8.RuneCountInString(email) > 255 {
		return errors.New("Invalid email address")
	}

	return nil
}
