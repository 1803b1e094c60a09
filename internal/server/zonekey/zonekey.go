// Package zonekey converts between zones and their display string,
// "<city>(<localNameOfCity>)/<province>", e.g. "Andong(안동시)/North Gyeongsang".
//
// The format is a wire contract with clients. Delimiter characters inside a
// city or province name are not supported.
package zonekey

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

// Parse decodes s. The city is everything before the first '(', the local
// name lies strictly between that '(' and the first ')' after it, and the
// province is everything after the first '/'. Nothing is trimmed.
func Parse(s string) (models.ZoneKey, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return models.ZoneKey{}, fmt.Errorf("%w: %q has no '('", common.ErrMalformedZoneKey, s)
	}
	closing := strings.IndexByte(s[open+1:], ')')
	if closing < 0 {
		return models.ZoneKey{}, fmt.Errorf("%w: %q has no ')' after '('", common.ErrMalformedZoneKey, s)
	}
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return models.ZoneKey{}, fmt.Errorf("%w: %q has no '/'", common.ErrMalformedZoneKey, s)
	}

	return models.ZoneKey{
		City:            s[:open],
		LocalNameOfCity: s[open+1 : open+1+closing],
		Province:        s[slash+1:],
	}, nil
}

// Format renders a zone in the form Parse accepts.
func Format(z models.Zone) string {
	return FormatKey(z.Key())
}

// FormatKey is the inverse of Parse.
func FormatKey(k models.ZoneKey) string {
	return fmt.Sprintf("%s(%s)/%s", k.City, k.LocalNameOfCity, k.Province)
}

// FormatAll renders zones in order.
func FormatAll(zones []models.Zone) []string {
	out := make([]string, 0, len(zones))
	for _, z := range zones {
		out = append(out, Format(z))
	}
	return out
}
