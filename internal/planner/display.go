package planner

import (
	"fmt"
	"math"
	"time"
)

// FormatMinutes renders a minute count as "2h 30m", "45m", or "3h".
func FormatMinutes(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

// RelativeDate renders a date relative to now: "Today", "Tomorrow",
// "In 3 days", "2 days ago", or the plain date outside a week's range.
func RelativeDate(date, now time.Time) string {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	days := int(math.Round(day(date).Sub(day(now)).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("In %d days", days)
	case days < -1 && days > -7:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return date.Format("Jan 02, 2006")
	}
}
