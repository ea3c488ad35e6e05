package service

import "time"

const dateLayout = "2006-01-02"

// Calendar days follow the machine's local time zone; a "day" for rollover,
// history, and streak purposes is the local date string.
func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

func TodayString(now time.Time) string {
	return DateString(now)
}

func YesterdayString(now time.Time) string {
	return DateString(now.AddDate(0, 0, -1))
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, time.Local)
}
