package presentation

import (
	"fmt"
	"time"
)

// LastUpdatePhrase describes how long ago a reading was taken. A component equal
// to one wins over plural ones, so 2 days 1 hour reads "1 hour ago".
func LastUpdatePhrase(then, now time.Time) string {
	if then.IsZero() {
		return ""
	}
	return fmt.Sprintf("Last update: %s", elapsedPhrase(now.Sub(then)))
}

func elapsedPhrase(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	days := int(elapsed / (24 * time.Hour))
	hours := int(elapsed % (24 * time.Hour) / time.Hour)
	minutes := int(elapsed % time.Hour / time.Minute)

	switch {
	case days == 1:
		return "1 day ago"
	case hours == 1:
		return "1 hour ago"
	case minutes == 1:
		return "1 minute ago"
	case days > 0:
		return fmt.Sprintf("%d days ago", days)
	case hours > 0:
		return fmt.Sprintf("%d hours ago", hours)
	case minutes > 0:
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		return "moments ago"
	}
}
