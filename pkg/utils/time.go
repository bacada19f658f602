package utils

import "time"

// FormatPubDate renders a backend-supplied publication date for display.
// Unparseable input is shown as-is.
func FormatPubDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, time.RFC1123Z, time.RFC1123, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}
