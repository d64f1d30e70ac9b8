// Package domain contains core business types and interfaces.
//
// This file defines the read-only report types for the admin dashboard.
package domain

import "time"

// ReportRange selects the time window of a report.
type ReportRange string

const (
	ReportRange7Days   ReportRange = "7d"
	ReportRange1Month  ReportRange = "1m"
	ReportRange3Months ReportRange = "3m"
	ReportRange6Months ReportRange = "6m"
	ReportRange1Year   ReportRange = "1y"
	ReportRangeYear    ReportRange = "year" // a calendar year, see ReportWindow
)

// IsValid returns true if the range is a recognized value.
func (r ReportRange) IsValid() bool {
	switch r {
	case ReportRange7Days, ReportRange1Month, ReportRange3Months,
		ReportRange6Months, ReportRange1Year, ReportRangeYear:
		return true
	}
	return false
}

// Granularity is the bucket size of a time series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// ReportWindow is a half-open [Start, End) interval in the reference zone.
type ReportWindow struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

// WindowFor resolves a range to concrete boundaries at now. year is only
// used for ReportRangeYear.
func WindowFor(r ReportRange, year int, now time.Time) (ReportWindow, error) {
	const op = "report.window"

	tomorrow := NextDayStart(now)
	nextMonth := MonthStart(now).AddDate(0, 1, 0)

	switch r {
	case ReportRange7Days:
		return ReportWindow{tomorrow.AddDate(0, 0, -7), tomorrow, GranularityDay}, nil
	case ReportRange1Month:
		return ReportWindow{tomorrow.AddDate(0, 0, -30), tomorrow, GranularityDay}, nil
	case ReportRange3Months:
		return ReportWindow{tomorrow.AddDate(0, 0, -90), tomorrow, GranularityDay}, nil
	case ReportRange6Months:
		return ReportWindow{nextMonth.AddDate(0, -6, 0), nextMonth, GranularityMonth}, nil
	case ReportRange1Year:
		return ReportWindow{nextMonth.AddDate(0, -12, 0), nextMonth, GranularityMonth}, nil
	case ReportRangeYear:
		if year < 2000 || year > now.In(RegionZone).Year()+1 {
			return ReportWindow{}, Invalid(op, "year is out of range")
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, RegionZone)
		return ReportWindow{start, start.AddDate(1, 0, 0), GranularityMonth}, nil
	}
	return ReportWindow{}, Invalid(op, "unknown report range")
}

// Labels returns the bucket labels covering the window, oldest first.
// Day buckets are labelled 2006-01-02, month buckets 2006-01.
func (w ReportWindow) Labels() []string {
	var labels []string
	switch w.Granularity {
	case GranularityMonth:
		for t := w.Start; t.Before(w.End); t = t.AddDate(0, 1, 0) {
			labels = append(labels, t.Format("2006-01"))
		}
	default:
		for t := w.Start; t.Before(w.End); t = t.AddDate(0, 0, 1) {
			labels = append(labels, t.Format("2006-01-02"))
		}
	}
	return labels
}

// Label returns the bucket label a regional calendar day falls into.
func (w ReportWindow) Label(day time.Time) string {
	if w.Granularity == GranularityMonth {
		return day.Format("2006-01")
	}
	return day.Format("2006-01-02")
}

// CountBucket is one bar of a time series.
type CountBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// CategorySlice is one slice of a categorical breakdown.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// NewPostsReport counts listings created inside a window.
type NewPostsReport struct {
	Range              ReportRange     `json:"range"`
	Granularity        Granularity     `json:"granularity"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	Total              int64           `json:"total"`
	Bar                []CountBucket   `json:"bar"`
	PieCategories      []CategorySlice `json:"pieCategories"`
	PieSpecializations []CategorySlice `json:"pieSpecializations"`
}
