package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

var emailRegexp = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@` +
		`((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`,
)

// ValidateEmail checks the address grammar on its lowercased form.
func ValidateEmail(email string) error {
	if !emailRegexp.MatchString(strings.ToLower(email)) {
		return entity.ErrEmailInvalid
	}

	return nil
}

// ParseNumeric reads a decimal integer field. Blank text is zero.
func ParseNumeric(text entity.NumericText) (int64, bool) {
	s := strings.TrimSpace(string(text))
	if s == "" {
		return 0, true
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
