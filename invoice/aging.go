package invoice

import "time"

// AgingBucket classifies an unpaid invoice by how many days past due it is.
type AgingBucket string

const (
	// AgingCurrent means the invoice is not yet past due.
	AgingCurrent AgingBucket = "current"
	// Aging1To30 covers 1-30 days past due.
	Aging1To30 AgingBucket = "1-30"
	// Aging31To60 covers 31-60 days past due.
	Aging31To60 AgingBucket = "31-60"
	// Aging61To90 covers 61-90 days past due.
	Aging61To90 AgingBucket = "61-90"
	// AgingOver90 covers anything older.
	AgingOver90 AgingBucket = "90+"
)

// Aging buckets the given due date relative to asOf. Comparison is by
// calendar day; the time-of-day components are ignored.
func Aging(dueDate, asOf time.Time) AgingBucket {
	days := DaysPastDue(dueDate, asOf)
	switch {
	case days <= 0:
		return AgingCurrent
	case days <= 30:
		return Aging1To30
	case days <= 60:
		return Aging31To60
	case days <= 90:
		return Aging61To90
	default:
		return AgingOver90
	}
}

// DaysPastDue returns whole calendar days between the due date and asOf.
// Zero or negative means the invoice is not overdue.
func DaysPastDue(dueDate, asOf time.Time) int {
	due := truncateToDay(dueDate)
	at := truncateToDay(asOf)
	return int(at.Sub(due).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
