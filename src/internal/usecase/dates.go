package usecase

import "time"

const dateLayout = "2006-01-02"

// cleanDate keeps s only when it is a real calendar date. Anything else
// is treated as absent, so range filters fall back to their defaults
// instead of handing garbage to the database.
func cleanDate(s string) string {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return ""
	}
	return s
}
