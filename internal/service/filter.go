package service

import (
	"strconv"
	"strings"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

// ApplyFilter returns the records matching every non-empty predicate of f.
// It returns nil when f is empty or nothing matches, meaning the full list is shown.
func ApplyFilter(records []entity.Record, f entity.Filter) []entity.Record {
	if f.Empty() {
		return nil
	}

	var out []entity.Record

	for _, r := range records {
		if matches(r, f) {
			out = append(out, r)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

func matches(r entity.Record, f entity.Filter) bool {
	if f.Names != "" && !strings.Contains(r.Names, f.Names) {
		return false
	}

	if f.Lastnames != "" && !strings.Contains(r.Lastnames, f.Lastnames) {
		return false
	}

	if f.Identification != "" && !strings.Contains(strconv.FormatInt(r.Identification, 10), f.Identification) {
		return false
	}

	if f.Phone != "" && !strings.Contains(strconv.FormatInt(r.Phone, 10), f.Phone) {
		return false
	}

	if f.Email != "" && !strings.Contains(r.Email, f.Email) {
		return false
	}

	if f.Role != "" && string(r.Role) != f.Role {
		return false
	}

	if f.State != "" && r.State != (f.State == "1") {
		return false
	}

	return true
}
