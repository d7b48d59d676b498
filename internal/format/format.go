package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency formats an amount in minor units for the currencies the studio
// prices in. Example: Currency(4500, "USD") => "$45.00".
func Currency(minor int64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	switch currency {
	case "USD":
		neg := minor < 0
		if neg {
			minor = -minor
		}
		head := thousandSep(minor / 100)
		tail := fmt.Sprintf("%02d", minor%100)
		if neg {
			return "-$" + head + "." + tail
		}
		return "$" + head + "." + tail
	case "EUR":
		neg := minor < 0
		if neg {
			minor = -minor
		}
		out := fmt.Sprintf("€%s.%02d", thousandSep(minor/100), minor%100)
		if neg {
			return "-" + out
		}
		return out
	case "JPY":
		return "¥" + thousandSep(minor)
	default:
		return fmt.Sprintf("%s %s", currency, thousandSep(minor))
	}
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// Date formats a time in the site's short form.
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// ParseDate parses the date layouts the content API emits. The zero time is
// returned for anything unparseable.
func ParseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
