package portfolio

import "strings"

// Period selects the lookback window of a performance computation, anchored
// at the latest available price date.
type Period int

const (
	// OneYear looks back 365 days. It is also the default for unrecognized periods.
	OneYear Period = iota
	// SixMonths looks back 180 days.
	SixMonths
	// Last60Days looks back 60 days.
	Last60Days
	// MonthToDate starts on the first day of the anchor's month.
	MonthToDate
	// YearToDate starts on January 1st of the anchor's year.
	YearToDate
)

func (p Period) String() string {
	switch p {
	case OneYear:
		return "1Y"
	case SixMonths:
		return "6M"
	case Last60Days:
		return "Last 60 Days"
	case MonthToDate:
		return "MTD"
	case YearToDate:
		return "YTD"
	default:
		return "1Y"
	}
}

// PeriodOf maps a period label onto a Period. Unrecognized labels default to
// OneYear, matching the dashboard's behavior for unknown selections.
func PeriodOf(s string) Period {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1Y", "1 YEAR":
		return OneYear
	case "6M", "6 MONTHS":
		return SixMonths
	case "LAST 60 DAYS", "60D":
		return Last60Days
	case "MTD":
		return MonthToDate
	case "YTD":
		return YearToDate
	default:
		return OneYear
	}
}

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Contains returns true when the date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Window computes the period's date range anchored at the given date.
func (p Period) Window(anchor Date) Range {
	switch p {
	case SixMonths:
		return Range{From: anchor.Add(-180), To: anchor}
	case Last60Days:
		return Range{From: anchor.Add(-60), To: anchor}
	case MonthToDate:
		return Range{From: anchor.StartOfMonth(), To: anchor}
	case YearToDate:
		return Range{From: anchor.StartOfYear(), To: anchor}
	default:
		return Range{From: anchor.Add(-365), To: anchor}
	}
}
