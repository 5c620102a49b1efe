package report

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the label format for report dates.
const DateLayout = "2006-01-02"

// Type selects the span of a report.
type Type string

const (
	Daily   Type = "daily"
	Weekly  Type = "weekly"
	Monthly Type = "monthly"
)

// Types lists report types in display order.
var Types = []Type{Daily, Weekly, Monthly}

// ParseType resolves a report type name, ignoring case.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Daily, "day":
		return Daily, nil
	case Weekly, "week":
		return Weekly, nil
	case Monthly, "month":
		return Monthly, nil
	}
	return "", fmt.Errorf("unknown report type %q (want daily, weekly, or monthly)", s)
}

// Dates returns the ISO labels a report of type t covers.
//
// A daily report covers anchor alone. A weekly report covers seven days
// starting at anchor and a monthly report covers the anchor's calendar month;
// both drop dates after today.
func Dates(t Type, anchor, today time.Time) ([]string, error) {
	day := midnight(anchor)
	limit := today.Format(DateLayout)

	var first, last time.Time
	switch t {
	case Daily:
		return []string{day.Format(DateLayout)}, nil
	case Weekly:
		first = day
		last = day.AddDate(0, 0, 6)
	case Monthly:
		first = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		last = first.AddDate(0, 1, -1)
	default:
		return nil, fmt.Errorf("unknown report type %q", t)
	}

	labels := make([]string, 0, 31)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		label := d.Format(DateLayout)
		if label > limit {
			break
		}
		labels = append(labels, label)
	}
	return labels, nil
}

// WeekStart returns midnight of the most recent first weekday on or before t.
func WeekStart(t time.Time, first time.Weekday) time.Time {
	day := midnight(t)
	offset := (int(day.Weekday()) - int(first) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// Anchor normalizes date to the start of the period a report of type t
// covers: the week start for weekly reports and the first of the month for
// monthly ones.
func Anchor(t Type, date time.Time, first time.Weekday) time.Time {
	switch t {
	case Weekly:
		return WeekStart(date, first)
	case Monthly:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	}
	return midnight(date)
}

// ParseWeekday resolves a weekday name such as "monday" or "Sun".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || (len(name) >= 3 && strings.HasPrefix(full, name)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
