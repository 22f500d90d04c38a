package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/invoice"
)

func TestAgingBuckets(t *testing.T) {
	t.Parallel()

	asOf := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
	day := 24 * time.Hour

	cases := []struct {
		name string
		due  time.Time
		want invoice.AgingBucket
	}{
		{"due in future", asOf.Add(10 * day), invoice.AgingCurrent},
		{"due today", asOf, invoice.AgingCurrent},
		{"one day over", asOf.Add(-1 * day), invoice.Aging1To30},
		{"thirty days over", asOf.Add(-30 * day), invoice.Aging1To30},
		{"thirty one days over", asOf.Add(-31 * day), invoice.Aging31To60},
		{"sixty days over", asOf.Add(-60 * day), invoice.Aging31To60},
		{"ninety days over", asOf.Add(-90 * day), invoice.Aging61To90},
		{"ninety one days over", asOf.Add(-91 * day), invoice.AgingOver90},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, invoice.Aging(tc.due, asOf))
		})
	}
}

func TestDaysPastDueIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, time.June, 14, 23, 59, 0, 0, time.UTC)
	asOf := time.Date(2025, time.June, 15, 0, 1, 0, 0, time.UTC)
	require.Equal(t, 1, invoice.DaysPastDue(due, asOf))
}
